package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails for strings that are empty after trimming whitespace.
func Required() Validator[string] {
	return Rule(Failure{
		Message: "field is required",
		Key:     "validation.required",
	}, func(value string) bool {
		return strings.TrimSpace(value) != ""
	})
}

func MinLen(min int) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Key:     "validation.min_length",
		Params:  map[string]any{"min": min},
	}, func(value string) bool {
		return len(value) >= min
	})
}

func MaxLen(max int) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Key:     "validation.max_length",
		Params:  map[string]any{"max": max},
	}, func(value string) bool {
		return len(value) <= max
	})
}

func Len(exact int) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be exactly %d characters long", exact),
		Key:     "validation.exact_length",
		Params:  map[string]any{"length": exact},
	}, func(value string) bool {
		return len(value) == exact
	})
}

// MaxRunes counts characters rather than bytes, so multi-byte text is measured as users see it.
func MaxRunes(max int) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Key:     "validation.max_length",
		Params:  map[string]any{"max": max},
	}, func(value string) bool {
		return utf8.RuneCountInString(value) <= max
	})
}

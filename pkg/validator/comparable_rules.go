package validator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// NotZero validates that a comparable value is not its zero value.
func NotZero[T comparable]() Validator[T] {
	return Rule(Failure{
		Message: "field is required",
		Key:     "validation.required",
	}, func(value T) bool {
		var zero T
		return value != zero
	})
}

// OneOf validates that the value is one of options.
func OneOf[T comparable](options ...T) Validator[T] {
	allowed := slices.Clone(options)
	return Rule(Failure{
		Message: fmt.Sprintf("must be one of: %s", joinValues(allowed)),
		Key:     "validation.in_list",
		Params:  map[string]any{"allowed_values": allowed},
	}, func(value T) bool {
		return slices.Contains(allowed, value)
	})
}

// NoneOf validates that the value is not one of options.
func NoneOf[T comparable](options ...T) Validator[T] {
	forbidden := slices.Clone(options)
	return Rule(Failure{
		Message: fmt.Sprintf("must not be one of: %s", joinValues(forbidden)),
		Key:     "validation.not_in_list",
		Params:  map[string]any{"forbidden_values": forbidden},
	}, func(value T) bool {
		return !slices.Contains(forbidden, value)
	})
}

// OneOfFold is OneOf with Unicode case folding, so "ACTIVE" matches "Active".
func OneOfFold(options ...string) Validator[string] {
	allowed := make([]string, len(options))
	for i, o := range options {
		allowed[i] = fold(o)
	}
	return Rule(Failure{
		Message: fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(options, ", ")),
		Key:     "validation.in_list_case_insensitive",
		Params:  map[string]any{"allowed_values": slices.Clone(options)},
	}, func(value string) bool {
		return slices.Contains(allowed, fold(value))
	})
}

// fold builds a fresh caser per call because cases.Caser is not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

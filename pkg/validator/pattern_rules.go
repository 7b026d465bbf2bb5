package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Matches validates against a pre-compiled pattern. Blank strings never match.
// description names the pattern in the failure message.
func Matches(re *regexp.Regexp, description string) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must match %s pattern", description),
		Key:     "validation.regex_pattern",
		Params:  map[string]any{"pattern": re.String(), "description": description},
	}, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		return re.MatchString(value)
	})
}

// NotMatches is the inverse of Matches. Blank strings always pass.
func NotMatches(re *regexp.Regexp, description string) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must not match %s pattern", description),
		Key:     "validation.regex_not_pattern",
		Params:  map[string]any{"pattern": re.String(), "description": description},
	}, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return !re.MatchString(value)
	})
}

func NoWhitespace() Validator[string] {
	return Rule(Failure{
		Message: "must not contain whitespace",
		Key:     "validation.no_whitespace",
	}, func(value string) bool {
		return !strings.ContainsFunc(value, unicode.IsSpace)
	})
}

func PrintableOnly() Validator[string] {
	return Rule(Failure{
		Message: "must contain only printable characters",
		Key:     "validation.printable_chars",
	}, func(value string) bool {
		return !strings.ContainsFunc(value, func(r rune) bool { return !unicode.IsPrint(r) })
	})
}

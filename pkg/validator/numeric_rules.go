package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](min T) Validator[T] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be at least %v", min),
		Key:     "validation.min",
		Params:  map[string]any{"min": min},
	}, func(value T) bool {
		return value >= min
	})
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](max T) Validator[T] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be at most %v", max),
		Key:     "validation.max",
		Params:  map[string]any{"max": max},
	}, func(value T) bool {
		return value <= max
	})
}

// Between is inclusive on both ends.
func Between[T Numeric](min, max T) Validator[T] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be between %v and %v", min, max),
		Key:     "validation.between",
		Params:  map[string]any{"min": min, "max": max},
	}, func(value T) bool {
		return value >= min && value <= max
	})
}

func Positive[T Numeric]() Validator[T] {
	return Rule(Failure{
		Message: "must be positive",
		Key:     "validation.positive",
	}, func(value T) bool {
		return value > 0
	})
}

func NonNegative[T Numeric]() Validator[T] {
	return Rule(Failure{
		Message: "must not be negative",
		Key:     "validation.non_negative",
	}, func(value T) bool {
		return value >= 0
	})
}

package validator

import "fmt"

// NotEmpty validates that a slice has at least one item.
func NotEmpty[E any]() Validator[[]E] {
	return Rule(Failure{
		Message: "field is required",
		Key:     "validation.required",
	}, func(value []E) bool {
		return len(value) > 0
	})
}

func MinItems[E any](min int) Validator[[]E] {
	return Rule(Failure{
		Message: fmt.Sprintf("must have at least %d items", min),
		Key:     "validation.min_items",
		Params:  map[string]any{"min": min},
	}, func(value []E) bool {
		return len(value) >= min
	})
}

func MaxItems[E any](max int) Validator[[]E] {
	return Rule(Failure{
		Message: fmt.Sprintf("must have at most %d items", max),
		Key:     "validation.max_items",
		Params:  map[string]any{"max": max},
	}, func(value []E) bool {
		return len(value) <= max
	})
}

// Unique validates that a slice has no duplicate items.
func Unique[E comparable]() Validator[[]E] {
	return Rule(Failure{
		Message: "must not contain duplicate items",
		Key:     "validation.unique",
	}, func(value []E) bool {
		seen := make(map[E]struct{}, len(value))
		for _, item := range value {
			if _, dup := seen[item]; dup {
				return false
			}
			seen[item] = struct{}{}
		}
		return true
	})
}

// Each validates every item with v and stops at the first failing item.
// The error is attributed to the item's index, e.g. "2: must be positive".
func Each[E any](v Validator[E]) Validator[[]E] {
	return Func[[]E](func(value []E) error {
		for i, item := range value {
			if err := v.Validate(item); err != nil {
				return &FieldError{Field: fmt.Sprint(i), Err: err}
			}
		}
		return nil
	})
}

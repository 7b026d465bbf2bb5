package validator_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/validity/pkg/validator"
)

func ExamplePredicateMsg() {
	positive := validator.PredicateMsg("must be positive", func(n int) bool { return n > 0 })

	fmt.Println(positive.Validate(5))
	fmt.Println(positive.Validate(-1))
	// Output:
	// <nil>
	// must be positive
}

func ExampleCollect() {
	type signup struct {
		Name string
		Age  int
	}

	v := validator.Collect(
		validator.FieldOf("name", func(s signup) string { return s.Name },
			validator.All(validator.Required(), validator.MinLen(3))),
		validator.FieldOf("age", func(s signup) int { return s.Age }, validator.Min(18)),
	)

	errs := validator.FieldErrors(v.Validate(signup{Name: "Al", Age: 12}))
	fmt.Println(errs["name"])
	fmt.Println(errs["age"])
	// Output:
	// [must be at least 3 characters long]
	// [must be at least 18]
}

func ExampleDefer() {
	task := validator.Defer(validator.Required(), "")

	fmt.Println(task.Started())
	_, err := task.Await(context.Background())
	fmt.Println(err)
	// Output:
	// false
	// field is required
}

package validator

// Numeric is the constraint used by numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Validator checks a value of type T. A nil error means the value is valid.
//
// Implementations must not mutate the value and must not keep state between calls,
// so a single Validator can be built once and shared across goroutines.
type Validator[T any] interface {
	Validate(value T) error
}

// Func is an action validator: it fails by returning an error of its own choosing.
type Func[T any] func(value T) error

// Validate calls f once and returns its error unchanged.
func (f Func[T]) Validate(value T) error {
	return f(value)
}

// Action builds an action validator from fn.
func Action[T any](fn func(T) error) Validator[T] {
	return Func[T](fn)
}

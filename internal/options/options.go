// Package options implements the generic functional-option plumbing used by
// the fitting and scaling configuration types.
package options

// Option configures a target of type T, typically a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its argument.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build starts from the value returned by defaults and applies opts to it.
//
// It is the usual entry point for option consumers:
//
//	cfg, err := options.Build(defaultScaleConfig, opts...)
func Build[C any](defaults func() C, opts ...Option[*C]) (C, error) {
	cfg := defaults()
	if err := Apply(&cfg, opts...); err != nil {
		var zero C
		return zero, err
	}

	return cfg, nil
}

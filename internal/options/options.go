package options

// Option is a functional option that configures a target of type T.
// Options may reject invalid settings by returning an error.
//
// Packages that expose configuration define a type alias specialized for
// their config type, e.g.:
//
//	type Option = options.Option[*Config]
type Option[T any] func(T) error

// Apply applies the given options to target in order, stopping at the first
// option that returns an error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

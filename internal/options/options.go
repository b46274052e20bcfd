// Package options is the generic functional-options plumbing every
// ndzip driver's config struct is built on (codec.MultiThreaded's worker
// count today; any future driver knob follows the same shape). It is
// deliberately domain-agnostic: nothing in this file knows about
// hypercubes, superblocks, or bits-types, which is exactly why it is
// reused as-is rather than reimplemented per config struct.
package options

// Option configures a target of type T. Drivers expose their own named
// option constructors (codec.WithWorkers, say) that return one of these
// rather than callers constructing one directly.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs every opt against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps a configuration function that cannot fail as an Option,
// for the common case (every ndzip driver option today) where validation
// happens once at newConfig time instead of per option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

package condition

type predicate[T any] func(T) bool

// Predicate returns a leaf condition backed by fn.
//
// It panics if fn is nil: a missing predicate is a programming error and is
// reported at construction rather than on first evaluation.
func Predicate[T any](fn func(T) bool) Condition[T] {
	if fn == nil {
		panic("condition: Predicate called with nil function")
	}
	return predicate[T](fn)
}

func (fn predicate[T]) Matches(value T) bool {
	return fn(value)
}

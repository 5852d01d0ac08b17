package condition

type empty[T any] struct{}

// Empty returns the condition that matches every value of type T, including
// the type's zero and nil values. It is the identity for combination: gating
// on Empty is the same as not gating at all.
func Empty[T any]() Condition[T] {
	return empty[T]{}
}

func (empty[T]) Matches(T) bool {
	return true
}

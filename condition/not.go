package condition

type not[T any] struct {
	cond Condition[T]
}

// Not returns a condition that matches exactly when cond does not.
// A nil cond is normalized with [NotNil] first, so Not(nil) matches nothing.
func Not[T any](cond Condition[T]) Condition[T] {
	return not[T]{NotNil(cond)}
}

func (c not[T]) Matches(value T) bool {
	return !c.cond.Matches(value)
}

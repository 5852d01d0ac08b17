package condition

// NotNil normalizes an optional condition: a nil cond is replaced by
// [Empty], anything else is returned unchanged. The result is always safe
// to evaluate.
func NotNil[T any](cond Condition[T]) Condition[T] {
	if cond == nil {
		return Empty[T]()
	}
	return cond
}

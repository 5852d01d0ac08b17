package condition

type and[T any] []Condition[T]

// And returns a condition that matches when every sub-condition matches.
//
// Sub-conditions are captured at construction and evaluated in order;
// evaluation stops at the first that does not match, so later sub-conditions
// are never reached. With no sub-conditions the result matches everything.
func And[T any](conds ...Condition[T]) Condition[T] {
	return and[T](conds)
}

func (c and[T]) Matches(value T) bool {
	for _, item := range c {
		if !item.Matches(value) {
			return false
		}
	}
	return true
}

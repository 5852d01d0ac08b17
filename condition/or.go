package condition

type or[T any] []Condition[T]

// Or returns a condition that matches when at least one sub-condition
// matches.
//
// Sub-conditions are captured at construction and evaluated in order;
// evaluation stops at the first match. With no sub-conditions the result
// matches everything, same as [And]: an empty Or means "no restriction",
// not "nothing can match". Callers that assemble sub-conditions dynamically
// rely on this, so it is part of the contract.
func Or[T any](conds ...Condition[T]) Condition[T] {
	return or[T](conds)
}

func (c or[T]) Matches(value T) bool {
	if len(c) == 0 {
		return true
	}
	for _, item := range c {
		if item.Matches(value) {
			return true
		}
	}
	return false
}

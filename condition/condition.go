package condition

// Condition reports whether a value of type T matches.
//
// A Condition is immutable after construction: Matches is a pure function of
// the value and the condition's construction-time state, so a single
// condition may be shared and evaluated concurrently without synchronization.
type Condition[T any] interface {
	Matches(value T) bool
}

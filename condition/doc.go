// Package condition provides small composable boolean predicates over a
// single typed value.
//
// A [Condition] wraps a predicate so it can be named, combined with [And],
// [Or], and [Not], and defaulted with [NotNil] when absent. The parent
// package uses conditions to decide which schema rules apply to a field:
//
//	when := condition.And(
//	    schemarules.RuleIs[schemarules.Bounded](),
//	    schemarules.SchemaIs("string"),
//	)
//
// Conditions hold no mutable state and perform no I/O; evaluating one is
// always side-effect free unless a user-supplied predicate is not.
package condition

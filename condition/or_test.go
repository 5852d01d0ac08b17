package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An Or with no sub-conditions matches everything, same as And. This is
// load-bearing for callers that assemble sub-conditions dynamically and end
// up with none, so it gets its own test.
func TestOr_NoSubConditions(t *testing.T) {
	assert.True(t, Or[int]().Matches(0))
	assert.True(t, Or[int]().Matches(-1))

	var conds []Condition[string]
	assert.True(t, Or(conds...).Matches("anything"))
}

func TestOr_ShortCircuit(t *testing.T) {
	always := Predicate(func(int) bool { return true })
	tripwire := Predicate(func(int) bool {
		panic("evaluated past a matching sub-condition")
	})

	cond := Or(always, tripwire)
	require.NotPanics(t, func() {
		assert.True(t, cond.Matches(1))
	})
}

func TestOr_EvaluationOrder(t *testing.T) {
	var seen []string
	probe := func(name string, result bool) Condition[int] {
		return Predicate(func(int) bool {
			seen = append(seen, name)
			return result
		})
	}

	cond := Or(probe("a", false), probe("b", true), probe("c", true))
	assert.True(t, cond.Matches(0))
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestOr_AllNonMatching(t *testing.T) {
	cond := Or(Predicate(func(int) bool { return false }), Predicate(func(int) bool { return false }))
	assert.False(t, cond.Matches(0))
}

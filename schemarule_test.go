package schemarules

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/schemarules/condition"
)

func newRuleContext(name string, rule Rule, typ string) *RuleContext {
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	if typ != "" {
		ref.Value.Type = &openapi3.Types{typ}
	}
	return &RuleContext{
		Name:   name,
		Rule:   rule,
		Schema: openapi3.NewSchema(),
		Ref:    ref,
	}
}

func TestRuleIs(t *testing.T) {
	ctx := newRuleContext("age", Min(0), "")

	assert.True(t, RuleIs[Bounded]().Matches(ctx))
	assert.True(t, RuleIs[Formatted]().Matches(ctx))
	assert.False(t, RuleIs[Enumerated]().Matches(ctx))
	assert.False(t, RuleIs[Requirer]().Matches(ctx))
}

func TestSchemaIs(t *testing.T) {
	str := newRuleContext("name", Required, openapi3.TypeString)
	num := newRuleContext("age", Required, openapi3.TypeInteger)
	untyped := newRuleContext("x", Required, "")

	assert.True(t, SchemaIs(openapi3.TypeString).Matches(str))
	assert.False(t, SchemaIs(openapi3.TypeString).Matches(num))
	assert.False(t, SchemaIs(openapi3.TypeString).Matches(untyped))
}

func TestNamed(t *testing.T) {
	ctx := newRuleContext("total", Min(0), "")

	assert.True(t, Named("total").Matches(ctx))
	assert.False(t, Named("age").Matches(ctx))
}

func TestSchemaRule_NilWhenAppliesAlways(t *testing.T) {
	var applied []string
	rules := []SchemaRule{{
		Name: "tag-everything",
		Apply: func(ctx *RuleContext) error {
			applied = append(applied, ctx.Name)
			return nil
		},
	}}

	schema := openapi3.NewSchema()
	schema.Properties = openapi3.Schemas{
		"a": {Value: openapi3.NewSchema()},
	}
	fields := []*FieldRules{{tag: "a", rules: []Rule{Required}}}

	require.NoError(t, applySchemaRules(rules, fields, schema))
	assert.Equal(t, []string{"a"}, applied)
}

func TestSchemaRule_ConditionGates(t *testing.T) {
	var applied int
	rules := []SchemaRule{{
		Name: "strings-only",
		When: condition.And(RuleIs[Described](), SchemaIs(openapi3.TypeString)),
		Apply: func(*RuleContext) error {
			applied++
			return nil
		},
	}}

	schema := openapi3.NewSchema()
	schema.Properties = openapi3.Schemas{
		"s": {Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}},
		"n": {Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}},
	}
	fields := []*FieldRules{
		{tag: "s", rules: []Rule{Describe("a string")}},
		{tag: "n", rules: []Rule{Describe("a number")}},
	}

	require.NoError(t, applySchemaRules(rules, fields, schema))
	assert.Equal(t, 1, applied)
}

func TestSchemaRule_ApplyErrorNamesRule(t *testing.T) {
	rules := []SchemaRule{{
		Name: "boom",
		Apply: func(*RuleContext) error {
			return assert.AnError
		},
	}}

	schema := openapi3.NewSchema()
	schema.Properties = openapi3.Schemas{
		"a": {Value: openapi3.NewSchema()},
	}
	fields := []*FieldRules{{tag: "a", rules: []Rule{Required}}}

	err := applySchemaRules(rules, fields, schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), `schema rule "boom"`)
}

func TestOptions_Merge(t *testing.T) {
	extra := SchemaRule{Name: "extra"}

	merged := Options{ExtraRules: []SchemaRule{extra}}.rules()
	require.Len(t, merged, len(DefaultRules())+1)
	assert.Equal(t, "extra", merged[len(merged)-1].Name)

	replaced := Options{Rules: []SchemaRule{}, ExtraRules: []SchemaRule{extra}}.rules()
	require.Len(t, replaced, 1)
	assert.Equal(t, "extra", replaced[0].Name)

	assert.Len(t, Options{}.rules(), len(DefaultRules()))
}

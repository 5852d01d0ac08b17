package schemarules

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/schemarules/condition"
)

// RuleContext carries one (field, validation rule) pair during schema
// generation. Schema rules inspect it to decide whether they apply, and
// mutate Schema or Ref when they do.
type RuleContext struct {
	// Name is the JSON property name of the field.
	Name string
	// Rule is the validation rule being mapped onto the schema.
	Rule Rule
	// Schema is the enclosing struct schema.
	Schema *openapi3.Schema
	// Ref is the property's own schema.
	Ref *openapi3.SchemaRef
}

// SchemaRule maps validation rules onto the generated schema. When decides
// whether the rule applies to a context; a nil When applies unconditionally.
// Apply performs the schema mutation.
type SchemaRule struct {
	Name  string
	When  condition.Condition[*RuleContext]
	Apply func(*RuleContext) error
}

// RuleIs returns a condition that matches when the context's validation rule
// implements R. Typically R is one of the metadata interfaces:
//
//	RuleIs[Bounded]()
func RuleIs[R any]() condition.Condition[*RuleContext] {
	return condition.Predicate(func(ctx *RuleContext) bool {
		_, ok := ctx.Rule.(R)
		return ok
	})
}

// SchemaIs returns a condition that matches when the property schema has the
// given OpenAPI type, e.g. openapi3.TypeString.
func SchemaIs(typ string) condition.Condition[*RuleContext] {
	return condition.Predicate(func(ctx *RuleContext) bool {
		return ctx.Ref.Value.Type != nil && ctx.Ref.Value.Type.Is(typ)
	})
}

// Named returns a condition that matches fields with the given JSON property
// name.
func Named(name string) condition.Condition[*RuleContext] {
	return condition.Predicate(func(ctx *RuleContext) bool {
		return ctx.Name == name
	})
}

// DefaultRules returns the schema rule table for the validation rules in
// this package. The table is rebuilt on each call, so callers may reorder or
// trim their copy freely.
func DefaultRules() []SchemaRule {
	return []SchemaRule{
		{
			Name: "required",
			When: RuleIs[Requirer](),
			Apply: func(ctx *RuleContext) error {
				if ctx.Rule.(Requirer).Requires() {
					ctx.Schema.Required = append(ctx.Schema.Required, ctx.Name)
				}
				return nil
			},
		},
		{
			Name: "bounds",
			When: RuleIs[Bounded](),
			Apply: func(ctx *RuleContext) error {
				lo, hi := ctx.Rule.(Bounded).Bounds()
				if lo != nil {
					f, err := getFloat(lo)
					if err != nil {
						return err
					}
					ctx.Ref.Value.Min = &f
				}
				if hi != nil {
					f, err := getFloat(hi)
					if err != nil {
						return err
					}
					ctx.Ref.Value.Max = &f
				}
				return nil
			},
		},
		{
			Name: "enum",
			When: RuleIs[Enumerated](),
			Apply: func(ctx *RuleContext) error {
				ctx.Ref.Value.Enum = ctx.Rule.(Enumerated).Enum()
				return nil
			},
		},
		{
			Name: "pattern",
			When: RuleIs[Patterned](),
			Apply: func(ctx *RuleContext) error {
				ctx.Ref.Value.Pattern = ctx.Rule.(Patterned).Pattern()
				return nil
			},
		},
		{
			// Formats only make sense on string-typed properties; a Min on
			// an int field also implements Formatted but must not fire here.
			Name: "format",
			When: condition.And(RuleIs[Formatted](), SchemaIs(openapi3.TypeString)),
			Apply: func(ctx *RuleContext) error {
				ctx.Ref.Value.Format = ctx.Rule.(Formatted).Format()
				return nil
			},
		},
		{
			Name: "description",
			When: RuleIs[Described](),
			Apply: func(ctx *RuleContext) error {
				appendDescription(ctx.Ref, ctx.Rule.(Described).Description())
				return nil
			},
		},
		{
			Name: "example",
			When: RuleIs[Exampled](),
			Apply: func(ctx *RuleContext) error {
				ctx.Ref.Value.Example = ctx.Rule.(Exampled).ExampleValue()
				return nil
			},
		},
	}
}

// applySchemaRules runs every matching schema rule for each (property,
// validation rule) pair.
func applySchemaRules(rules []SchemaRule, fields []*FieldRules, schema *openapi3.Schema) error {
	for name, propRef := range schema.Properties {
		for _, f := range fields {
			if f.tag != name {
				continue
			}
			for _, r := range f.rules {
				ctx := &RuleContext{
					Name:   name,
					Rule:   r,
					Schema: schema,
					Ref:    propRef,
				}
				for _, sr := range rules {
					if !condition.NotNil(sr.When).Matches(ctx) {
						continue
					}
					if err := sr.Apply(ctx); err != nil {
						return fmt.Errorf("schema rule %q on field %q: %w", sr.Name, name, err)
					}
				}
			}
		}
	}
	return nil
}

// appendDescription joins desc onto the property description, separating it
// from any existing text with a space.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// Package schemarules generates OpenAPI 3 schemas from struct validation
// rules, deciding which schema mutations apply through composable conditions.
//
// Define validation rules by implementing [Ruler] on your structs:
//
//	func (o *Order) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&o.ID, Required),
//	        Field(&o.Amount, Min(0.01)),
//	    }
//	}
//
// Validate with [Validate] and generate a schema with [NewSchemaRefForValue].
//
// Schema output is driven by a table of [SchemaRule] values. Each entry
// carries a [condition.Condition] over a [RuleContext] that decides whether
// the entry applies to a given field and validation rule; [DefaultRules]
// covers every rule in this package. Custom validation rules get schema
// behavior by implementing one of the metadata interfaces ([Bounded],
// [Enumerated], ...) or by adding a conditioned entry via [Options]:
//
//	opts := Options{ExtraRules: []SchemaRule{{
//	    Name: "money",
//	    When: condition.And(RuleIs[Bounded](), Named("total")),
//	    Apply: func(ctx *RuleContext) error {
//	        ctx.Ref.Value.Format = "decimal"
//	        return nil
//	    },
//	}}}
//
// Sub-packages:
//   - condition – composable boolean predicates used to gate schema rules
package schemarules

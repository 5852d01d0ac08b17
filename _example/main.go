// Command example demonstrates condition-gated schema generation: an Order
// type declares validation rules, a custom conditioned schema rule marks
// money fields, and the generated OpenAPI schema plus a validation failure
// are printed.
//
// Run:
//
//	go run ./_example
package main

import (
	"encoding/json"
	"fmt"
	"log"

	v "github.com/Gobd/schemarules"
	"github.com/Gobd/schemarules/condition"
)

// Order is a sample request type.
type Order struct {
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	Status       string  `json:"status"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func (o *Order) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&o.CustomerName, v.Required, v.Length(1, 200)),
		v.Field(&o.Email, v.Required, v.Email),
		v.Field(&o.Status, v.In("new", "paid", "shipped")),
		v.Field(&o.ItemCount, v.Required, v.Min(1)),
		v.Field(&o.Total, v.Required, v.Min(0.01)),
	}
}

func main() {
	// Money fields get a "decimal" format on top of the default rules. The
	// condition composes the library's builders: the rule fires for bounded
	// rules on the "total" or "item_count" fields, but never for strings.
	opts := v.Options{ExtraRules: []v.SchemaRule{{
		Name: "money",
		When: condition.And(
			v.RuleIs[v.Bounded](),
			condition.Or(v.Named("total"), v.Named("item_count")),
			condition.Not(v.SchemaIs("string")),
		),
		Apply: func(ctx *v.RuleContext) error {
			ctx.Ref.Value.Format = "decimal"
			return nil
		},
	}}}

	ref, err := v.NewSchemaRef(&Order{}, opts)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(ref.Value, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))

	bad := &Order{CustomerName: "Sam", Email: "not-an-email", Status: "lost"}
	fmt.Println("validation:", v.Validate(bad))
}

package schemarules

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// Rule is a validation rule. It is ozzo-validation's Rule unchanged;
	// schema behavior is attached through the metadata interfaces below
	// rather than through an extra method, so any ozzo rule can be used
	// directly and only documents itself if it chooses to.
	Rule = validation.Rule

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by structs that declare their own field rules.
	Ruler interface {
		Rules() []*FieldRules
	}
)

// Metadata interfaces implemented by the rules in this package. The default
// schema rules match on these (see [RuleIs]) instead of on concrete types,
// so custom validation rules get the same schema treatment by implementing
// them.
type (
	// Requirer marks rules that make a field mandatory.
	Requirer interface {
		Requires() bool
	}

	// Bounded is implemented by rules that constrain a numeric range.
	// Either bound may be nil when only one side is constrained; non-nil
	// bounds must be convertible to float64.
	Bounded interface {
		Bounds() (min, max any)
	}

	// Enumerated is implemented by rules that restrict a value to a fixed
	// set of allowed values.
	Enumerated interface {
		Enum() []any
	}

	// Patterned is implemented by rules that match against a regular
	// expression.
	Patterned interface {
		Pattern() string
	}

	// Formatted is implemented by rules that imply a string format
	// (e.g. "email", "uuid").
	Formatted interface {
		Format() string
	}

	// Described is implemented by rules that document themselves with a
	// human-readable description.
	Described interface {
		Description() string
	}

	// Exampled is implemented by rules that provide a schema example value.
	Exampled interface {
		ExampleValue() any
	}
)

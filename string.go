package schemarules

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringRule struct {
	validation.StringRule
	desc string
}

// NewStringRule returns a string validation rule using desc as both the
// error message and the schema description.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return stringRule{
		validation.NewStringRule(validator, desc),
		desc,
	}
}

// NewStringRuleWithError returns a string validation rule with a custom
// error and schema description.
func NewStringRuleWithError(validator func(string) bool, err validation.Error, desc string) Rule {
	return stringRule{
		validation.NewStringRuleWithError(validator, err),
		desc,
	}
}

func (r stringRule) Description() string {
	return r.desc
}

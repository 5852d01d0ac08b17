package schemarules

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required is a validation rule that checks if a value is not empty.
var Required = requiredRule{validation.Required}

func (requiredRule) Requires() bool {
	return true
}

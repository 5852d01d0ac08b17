package schemarules

import (
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type formatRule struct {
	validation.StringRule
	format string
}

// Email is a validation rule that checks if a string is a valid email
// address, documented as format "email".
var Email = formatRule{
	validation.NewStringRule(govalidator.IsEmail, "must be a valid email address"),
	"email",
}

// UUID is a validation rule that checks if a string is a valid UUID,
// documented as format "uuid".
var UUID = formatRule{
	validation.NewStringRule(govalidator.IsUUID, "must be a valid UUID"),
	"uuid",
}

// URL is a validation rule that checks if a string is a valid URL,
// documented as format "uri".
var URL = formatRule{
	validation.NewStringRule(govalidator.IsURL, "must be a valid URL"),
	"uri",
}

func (r formatRule) Format() string {
	return r.format
}

package schemarules

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a validation rule that checks if a string's rune length is within the specified range.
func Length(lo, hi int) Rule {
	return &lengthRule{
		validation.RuneLength(lo, hi),
		lo,
		hi,
	}
}

func (r *lengthRule) Bounds() (lo, hi any) {
	return r.min, r.max
}

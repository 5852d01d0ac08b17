package schemarules

import (
	"encoding/json"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks value against the rules it declares via [Ruler].
// Values that do not implement Ruler are considered valid.
func Validate(value any) error {
	r, ok := value.(Ruler)
	if !ok {
		return nil
	}
	return ValidateStruct(value, r.Rules())
}

// ValidateStruct validates a struct with explicit field rules.
// Prefer [Validate] for types implementing [Ruler].
func ValidateStruct(structPtr any, fields []*FieldRules) error {
	flat := expandFields(structPtr, fields)
	vFields := make([]*validation.FieldRules, len(flat))
	for i, fr := range flat {
		vFields[i] = validation.Field(fr.fieldPtr, fr.rules...)
	}
	return validation.ValidateStruct(structPtr, vFields...)
}

// UnmarshalAndValidate decodes JSON from b into dst, then validates.
func UnmarshalAndValidate(b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// DecodeAndValidate reads JSON from r into dst using a streaming decoder,
// then validates. Use this instead of [UnmarshalAndValidate] when reading
// directly from an [io.Reader] such as an HTTP request body.
func DecodeAndValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	return Validate(dst)
}

package schemarules

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
func Min(threshold any) Rule {
	return thresholdRule{
		validation.Min(threshold),
		threshold,
		true,
	}
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
func Max(threshold any) Rule {
	return thresholdRule{
		validation.Max(threshold),
		threshold,
		false,
	}
}

func (r thresholdRule) Bounds() (lo, hi any) {
	if r.min {
		return r.threshold, nil
	}
	return nil, r.threshold
}

// Format documents the threshold's Go type for string-typed properties
// holding numeric values (e.g. json.Number fields).
func (r thresholdRule) Format() string {
	return fmt.Sprintf("%T", r.threshold)
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.ValueOf(unk)
	v = reflect.Indirect(v)
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	fv := v.Convert(floatType)
	return fv.Float(), nil
}

// Validate checks if the given value is valid or not.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	if reflect.ValueOf(value).Kind() != reflect.String {
		return r.ThresholdRule.Validate(value)
	}

	// Handle json.Number and other types
	if v, ok := value.(fmt.Stringer); ok {
		value = v.String()
	}

	var err error
	rv := reflect.ValueOf(r.threshold)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err = strconv.ParseInt(value.(string), 10, 64)
		if err != nil {
			return errors.New("must be int64")
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		value, err = strconv.ParseUint(value.(string), 10, 64)
		if err != nil {
			return errors.New("must be uint64")
		}
	case reflect.Float32, reflect.Float64:
		value, err = strconv.ParseFloat(value.(string), 64)
		if err != nil {
			return errors.New("must be float64")
		}
	}

	return r.ThresholdRule.Validate(value)
}

package schemarules

import (
	"reflect"
)

// Field creates a FieldRules binding a struct field pointer to its validation rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// expandFields flattens embedded Ruler field rules into the parent's rule set.
// Non-embedded fields are returned as-is. Embedded Ruler fields have their
// Rules() inlined recursively, so error keys and schema properties are flat
// (not nested under the embedded name).
func expandFields(structPtr any, fields []*FieldRules) []*FieldRules {
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	if !structVal.IsValid() || structVal.Kind() != reflect.Struct {
		return fields
	}

	result := make([]*FieldRules, 0, len(fields))
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() == reflect.Ptr {
			if sf := findStructField(structVal, fv); sf != nil && sf.Anonymous {
				if r, ok := fv.Interface().(Ruler); ok {
					result = append(result, expandFields(fv.Interface(), r.Rules())...)
					continue
				}
			}
		}
		result = append(result, fr)
	}
	return result
}

// findStructField locates the struct field of structVal whose address equals
// fieldVal. Embedded structs are searched recursively. The type check guards
// against the embedded-struct case where the parent field and the embedded
// struct's first field share an address.
func findStructField(structVal reflect.Value, fieldVal reflect.Value) *reflect.StructField {
	ptr := fieldVal.Pointer()
	for i := 0; i < structVal.NumField(); i++ {
		sf := structVal.Type().Field(i)
		if ptr == structVal.Field(i).Addr().Pointer() {
			if sf.Type == fieldVal.Elem().Type() {
				return &sf
			}
		}
		if sf.Anonymous {
			fi := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				fi = fi.Elem()
			}
			if fi.Kind() == reflect.Struct {
				if found := findStructField(fi, fieldVal); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

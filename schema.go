package schemarules

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = reflect.Indirect(rv)
	}
	return rv
}

// rulesForType returns a fresh instance of t and its declared field rules
// if t implements Ruler.
func rulesForType(t reflect.Type) (any, []*FieldRules) {
	inst := reflect.New(t)
	if r, ok := inst.Interface().(Ruler); ok {
		return inst.Interface(), r.Rules()
	}
	return nil, nil
}

// removeSkippedFields deletes schema properties for fields tagged with docs:"skip".
// Recurses into embedded (anonymous) struct fields.
func removeSkippedFields(structVal reflect.Value, schema *openapi3.Schema) {
	for i := 0; i < structVal.NumField(); i++ {
		sf := structVal.Type().Field(i)
		if sf.Anonymous {
			fi := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				fi = fi.Elem()
			}
			if fi.Kind() == reflect.Struct {
				removeSkippedFields(fi, schema)
			}
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] != "skip" {
			continue
		}
		jsonTag := strings.Split(sf.Tag.Get("json"), ",")[0]
		delete(schema.Properties, jsonTag)
	}
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its JSON tag name
// using struct field address comparison.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		if sf.Anonymous {
			fields[i].tag = ""
			continue
		}
		fields[i].tag = strings.Split(sf.Tag.Get("json"), ",")[0]
	}
	return nil
}

// schemaDoc returns a SchemaCustomizer that applies the conditioned schema
// rule table to every Ruler type the generator visits.
func schemaDoc(rules []SchemaRule) openapi3gen.SchemaCustomizerFn {
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		if t.Kind() != reflect.Struct {
			return nil
		}

		inst, fields := rulesForType(t)
		if inst == nil {
			return nil
		}
		structVal := indirect(inst)

		// Expand embedded Ruler fields into the parent's rule set.
		fields = expandFields(inst, fields)

		removeSkippedFields(structVal, schema)

		if err := mapFieldsToTags(fields, structVal); err != nil {
			return err
		}

		return applySchemaRules(rules, fields, schema)
	}
}

// NewSchemaRef generates an OpenAPI schema for value, applying the schema
// rule table from opts to the validation rules of every [Ruler] type
// encountered.
func NewSchemaRef(value any, opts Options) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc(opts.rules())))
	return g.NewSchemaRefForValue(value, nil)
}

// NewSchemaRefForValue is [NewSchemaRef] with default options.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return NewSchemaRef(value, Options{})
}

package registry

import (
	"fmt"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// FieldType is the restricted set of JSON Schema primitive types the
// catalog's standard shapes need to express Taiga's request parameters.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldInteger FieldType = "integer"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldObject  FieldType = "object"
	FieldArray   FieldType = "array"
)

// Field describes one parameter of a tool's input schema.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
}

// Schema is a tool's typed input schema: an ordered list of fields. It is
// deliberately flat — every standard shape in the catalog (list, get,
// create, ...) needs only scalar and simple array/object fields, never
// nested schemas.
type Schema struct {
	Fields []Field
}

// Validate decodes and checks args against s, per the dispatch contract
// (spec §4.1): a missing required field or a type mismatch fails with
// InvalidInput carrying the offending field's path. Unknown keys in args
// are passed through untouched — forward-compatible with upstream fields
// the schema does not yet describe.
func (s Schema) Validate(args map[string]any) error {
	for _, f := range s.Fields {
		v, present := args[f.Name]
		if !present {
			if f.Required {
				return taigaerr.New(taigaerr.InvalidInput, "missing required field").WithField(f.Name)
			}
			continue
		}
		if v == nil {
			if f.Required {
				return taigaerr.New(taigaerr.InvalidInput, "required field is null").WithField(f.Name)
			}
			continue
		}
		if !matchesType(v, f.Type) {
			return taigaerr.New(taigaerr.InvalidInput,
				fmt.Sprintf("expected type %s", f.Type)).WithField(f.Name)
		}
	}
	return nil
}

func matchesType(v any, t FieldType) bool {
	switch t {
	case FieldString:
		_, ok := v.(string)
		return ok
	case FieldInteger, FieldNumber:
		switch v.(type) {
		case float64, float32, int, int32, int64:
			return true
		default:
			return false
		}
	case FieldBoolean:
		_, ok := v.(bool)
		return ok
	case FieldObject:
		_, ok := v.(map[string]any)
		return ok
	case FieldArray:
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Validation error codes
const (
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeInvalidType          = "INVALID_TYPE"
	CodeInvalidFormat        = "INVALID_FORMAT"
	CodeExtraField           = "EXTRA_FIELD"
	CodeInvalidDocument      = "INVALID_DOCUMENT"
)

// ValidationError describes one conformance failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result aggregates the outcome of validating one document
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Err returns the first validation error, or nil when the document conforms.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors[0]
}

// Validate checks a raw JSON document against a model descriptor.
func Validate(data []byte, desc Descriptor) *Result {
	doc, err := decodeObject(data)
	if err != nil {
		return &Result{Errors: []ValidationError{{
			Field:   desc.Name,
			Message: err.Error(),
			Code:    CodeInvalidDocument,
		}}}
	}

	errs := validateObject("", doc, Property{
		Type:       TypeObject,
		Properties: desc.Properties,
		Required:   desc.Required,
		Open:       desc.Open,
	})

	return &Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateModel marshals a typed model and validates the resulting document.
// The client uses it to fail bad requests locally before they hit the wire.
func ValidateModel(v any, desc Descriptor) *Result {
	data, err := json.Marshal(v)
	if err != nil {
		return &Result{Errors: []ValidationError{{
			Field:   desc.Name,
			Message: err.Error(),
			Code:    CodeInvalidDocument,
		}}}
	}
	return Validate(data, desc)
}

// decodeObject decodes with UseNumber so the integer/number distinction
// survives into validation.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return doc, nil
}

func validateObject(path string, obj map[string]any, prop Property) []ValidationError {
	var errs []ValidationError

	for _, name := range prop.Required {
		if _, ok := obj[name]; !ok {
			errs = append(errs, ValidationError{
				Field:   joinPath(path, name),
				Message: "required field missing",
				Code:    CodeRequiredFieldMissing,
			})
		}
	}

	for name, value := range obj {
		declared, ok := prop.Properties[name]
		if !ok {
			// Undeclared members are the any-typed extension point on open
			// models; closed models reject them.
			if !prop.Open {
				errs = append(errs, ValidationError{
					Field:   joinPath(path, name),
					Message: "field is not declared by the schema",
					Code:    CodeExtraField,
				})
			}
			continue
		}
		errs = append(errs, validateValue(joinPath(path, name), value, declared)...)
	}

	return errs
}

func validateValue(path string, value any, prop Property) []ValidationError {
	mismatch := func() []ValidationError {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("expected %s, got %s", prop.Type, jsonTypeName(value)),
			Code:    CodeInvalidType,
		}}
	}

	switch v := value.(type) {
	case nil:
		return mismatch()
	case string:
		if prop.Type != TypeString {
			return mismatch()
		}
		return validateStringFormat(path, v, prop.Format)
	case bool:
		if prop.Type != TypeBoolean {
			return mismatch()
		}
	case json.Number:
		switch prop.Type {
		case TypeNumber:
		case TypeInteger:
			if !isIntegral(v) {
				return []ValidationError{{
					Field:   path,
					Message: fmt.Sprintf("expected integer, got number %s", v.String()),
					Code:    CodeInvalidType,
				}}
			}
		default:
			return mismatch()
		}
	case map[string]any:
		if prop.Type != TypeObject {
			return mismatch()
		}
		return validateObject(path, v, prop)
	case []any:
		if prop.Type != TypeArray {
			return mismatch()
		}
		if prop.Items != nil {
			var errs []ValidationError
			for i, item := range v {
				errs = append(errs, validateValue(fmt.Sprintf("%s[%d]", path, i), item, *prop.Items)...)
			}
			return errs
		}
	default:
		return mismatch()
	}

	return nil
}

func validateStringFormat(path, value, format string) []ValidationError {
	var layout string
	switch format {
	case "":
		return nil
	case "date":
		layout = "2006-01-02"
	case "date-time":
		layout = time.RFC3339
	default:
		return nil
	}

	if _, err := time.Parse(layout, value); err != nil {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("value %q is not a valid %s", value, format),
			Code:    CodeInvalidFormat,
		}}
	}
	return nil
}

func isIntegral(n json.Number) bool {
	if _, err := n.Int64(); err == nil {
		return true
	}
	f, err := n.Float64()
	return err == nil && f == math.Trunc(f)
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

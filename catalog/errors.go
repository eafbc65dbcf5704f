package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field of a catalog Document.
type FieldError struct {
	// Field is the path of the field inside the Document, like "tags[2].kind".
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError is returned when the decoded Document violates the catalog rules.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid catalog: " + strings.Join(parts, "; ")
}

// validate checks the Documents. The field names in its errors are the yaml keys.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// the registration fails only for an empty tag name
	_ = v.RegisterValidation("known_validator", func(fl validator.FieldLevel) bool {
		_, ok := LookupValidator(fl.Field().String())
		return ok
	})

	return v
}

// validateDocument runs the struct validation and converts its errors into a ValidationError.
func validateDocument(doc *Document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}

	return &ValidationError{Fields: fields}
}

// fieldPath drops the struct type name from the namespace.
func fieldPath(ns string) string {
	if _, path, ok := strings.Cut(ns, "."); ok {
		return path
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "too few items"
	case "max":
		return "value is too long"
	case "len":
		return "must be a single symbol"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "known_validator":
		return "unknown validator, expected one of: " + strings.Join(ValidatorNames(), " ")
	default:
		return "invalid value"
	}
}

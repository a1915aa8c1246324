package rest

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Meta keys carry the wire field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateRequest runs tag validation and shapes failures into the per-field
// meta map carried by the 422 envelope.
func validateRequest(req any) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": "invalid"}
	}

	meta := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		meta[fe.Field()] = formatFieldError(fe)
	}
	return meta
}

// formatFieldError formats a single field validation error
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "invalid"
	}
}

package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their wire names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings that are empty after trimming. A bare
// "required" passes whitespace-only values through.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs the registered validations and maps failures into
// per-field messages. Required-style failures use the exact phrasing the
// client matches on.
func ValidateStruct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, verr := range err.(validator.ValidationErrors) {
		field := verr.Field()
		var message string
		switch verr.Tag() {
		case "required", "notblank", "min":
			message = fmt.Sprintf("Field '%s' is required.", field)
		default:
			message = fmt.Sprintf("Field '%s' is invalid.", field)
		}
		out = append(out, FieldError{Field: field, Message: message})
	}
	return out
}

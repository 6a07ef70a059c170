package web

import (
	"github.com/go-playground/validator/v10"
)

// GetErrorMsg renders a binding validation error as a user facing message.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field must be at least " + fe.Param()
	case "max":
		return " field must be at most " + fe.Param()
	case "numeric":
		return " field must be a number"
	}

	return " field is invalid"
}

package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "lte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

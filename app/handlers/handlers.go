// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"fmt"
	"regexp"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/go-playground/validator/v10"
)

// phonePattern accepts US numbers like 123-456-7890, (123) 456-7890 or 1234567890
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

// registerDirectoryValidations wires the domain vocabulary checks into a validator instance
func registerDirectoryValidations(v *validator.Validate) {
	v.RegisterValidation("phone_format", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return models.IsValidGenre(fl.Field().String())
	})

	v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return models.IsValidState(fl.Field().String())
	})
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "min":
		if err.Kind().String() == "slice" {
			return err.Field() + " must contain at least " + err.Param() + " items"
		}
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "len":
		return err.Field() + " must be exactly " + err.Param() + " characters"
	case "url":
		return err.Field() + " must be a valid URL"
	case "phone_format":
		return "Phone number must be in format 123-456-7890"
	case "genre":
		return err.Field() + " must contain only known genres"
	case "us_state":
		return err.Field() + " must be a valid US state code"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}

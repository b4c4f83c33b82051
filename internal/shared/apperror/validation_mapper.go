package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// leave_type_id -> leave type id
	s = strings.ReplaceAll(s, "_", " ")

	// leave type id -> Leave Type Id
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError mengubah validator.ValidationErrors menjadi *AppError.
// Hanya error pertama yang dilaporkan.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// e.Field() sudah berupa nama json karena RegisterTagNameFunc di Init()
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "oneof":
			return ErrValidation.Withf("%s must be one of: %s", humanReadableField, e.Param())
		default:
			return InvalidField(humanReadableField)
		}
	}

	return ErrInvalidInput
}

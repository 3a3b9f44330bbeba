package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// student_id -> Student Id
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Indonesian)
	return caser.String(s)
}

// MapValidationError turns the first binding failure into a field-level AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Format request tidak valid",
		http.StatusBadRequest,
	)
}

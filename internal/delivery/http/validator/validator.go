// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"
	"unicode"

	domainerrors "rater/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// passwordSymbols is the set of symbols of which a password must contain at
// least one.
const passwordSymbols = "!@#$%^&*"

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds the validator with the platform's custom rules registered.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Registration always succeeds for a well-formed tag name; the error
	// return only fires on empty tags.
	_ = validate.RegisterValidation("password", validatePassword)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as a validation error
// carrying the offending fields, handled by the central error handler.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var validationErrors playground.ValidationErrors
		if errors.As(err, &validationErrors) {
			return domainerrors.ErrValidationFailed.WithDetails(describeFields(validationErrors))
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// validatePassword enforces 8-16 characters with at least one uppercase
// letter and one symbol from the fixed set.
func validatePassword(fl playground.FieldLevel) bool {
	password := fl.Field().String()

	length := len([]rune(password))
	if length < 8 || length > 16 {
		return false
	}

	hasUpper := false
	hasSymbol := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}

	return hasUpper && hasSymbol
}

// describeFields flattens validation failures into a field:rule list.
func describeFields(validationErrors playground.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		parts = append(parts, fieldErr.Field()+":"+fieldErr.Tag())
	}

	return strings.Join(parts, ", ")
}

// Package validation holds client-side checks for the auth forms. They
// catch empty or malformed input before a round-trip; the server remains
// the authority and its field errors are surfaced verbatim regardless.
package validation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dkolesov/shopfront/pkg/api"
)

// ValidateLogin checks the login form payload
func ValidateLogin(req api.LoginRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

// ValidateRegister checks the registration form payload
func ValidateRegister(req api.RegisterRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Username, validation.Required, validation.Length(3, 150)),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(
			&req.PasswordConfirm,
			validation.Required,
			validation.By(stringEquals(req.Password, "passwords do not match")),
		),
	)
}

// ValidateChangePassword checks the change-password form payload
func ValidateChangePassword(req api.ChangePasswordRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.OldPassword, validation.Required),
		validation.Field(&req.NewPassword, validation.Required, validation.Length(8, 128)),
	)
}

// FieldMap converts a validation error into the same field→messages shape
// the server uses, so forms render both identically.
func FieldMap(err error) map[string][]string {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string][]string, len(fieldErrs))
		for name, fieldErr := range fieldErrs {
			fields[name] = []string{fieldErr.Error()}
		}
		return fields
	}

	return map[string][]string{"non_field_errors": {err.Error()}}
}

func stringEquals(expected, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(message)
		}
		return nil
	}
}

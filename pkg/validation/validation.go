// Package validation holds the pure input contracts for the two user entry
// points, sign-in and registration. Validation never touches the store; it is
// a pre-persistence gate producing field-level error messages.
package validation

import (
	"errors"
	"strings"

	"github.com/finflow/finflow/pkg/domain"
	"github.com/go-playground/validator/v10"
)

// SignInInput is the sign-in form contract.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// RegisterInput is the registration form contract.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// FieldError is a single violated rule on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of violations for one input. It unwraps to
// domain.ErrValidation so callers can branch with errors.Is.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() error { return domain.ErrValidation }

var validate = validator.New(validator.WithRequiredStructEnabled())

// messages maps field+tag to the exact form message. These strings are part
// of the external contract and must not be reworded.
var messages = map[string]string{
	"Email.required":    "Email is required",
	"Email.email":       "Invalid email",
	"Password.required": "Password is required",
	"Password.min":      "Password must be more than 8 characters",
	"Password.max":      "Password must be less than 32 characters",
	"Name.required":     "Name is required",
	"Name.max":          "Name must be less than 32 characters",
}

// ValidateSignIn checks a sign-in input and returns nil or an Errors value.
func ValidateSignIn(in SignInInput) error {
	return check(in)
}

// ValidateRegister checks a registration input and returns nil or an Errors value.
func ValidateRegister(in RegisterInput) error {
	return check(in)
}

func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

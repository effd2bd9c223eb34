package account

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is enforced by the signup form, not by Store.
const MinPasswordLength = 6

// SignupForm is what a person types into the signup screen.
type SignupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
	Role     Role   `validate:"required,oneof=seeker employer"`
}

// LoginForm is what a person types into the login screen.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

var formValidator = validator.New()

// Validate checks the form fields and returns a message fit for display.
func (f SignupForm) Validate() error {
	return formError(formValidator.Struct(f))
}

// Validate checks the form fields and returns a message fit for display.
func (f LoginForm) Validate() error {
	return formError(formValidator.Struct(f))
}

// formError turns the first validation failure into a readable error.
func formError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

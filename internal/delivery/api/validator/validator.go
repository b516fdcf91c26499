// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"matjip/internal/domain/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator that knows the listing rules.
func New() echo.Validator {
	return &requestValidator{validate: validation.New()}
}

// Validate checks the struct tags of a bound request.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

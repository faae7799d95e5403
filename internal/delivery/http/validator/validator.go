// Package validator wires go-playground struct validation into echo.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "superstore/internal/domain/errors"
)

type structValidator struct {
	validate *playground.Validate
}

// New creates the request body validator installed on the echo server.
func New() echo.Validator {
	return &structValidator{validate: playground.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

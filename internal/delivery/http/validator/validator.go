// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "vendofyx/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance used by the echo server.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator registered on the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(),
	}
}

// Validate checks struct tags and converts failures into the application
// error taxonomy so the error handler renders them consistently.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

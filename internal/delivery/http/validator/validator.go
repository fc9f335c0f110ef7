// Package validator plugs go-playground/validator into echo's Validator slot.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps the go-playground validator so echo's c.Validate
// can run struct tag validation on bound request bodies.
type CustomValidator struct {
	validator *playground.Validate
}

// New creates a validator instance with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validator: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}

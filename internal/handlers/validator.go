package handlers

import (
	stderrors "errors"

	"teller-desk/internal/errors"
	"teller-desk/internal/middleware"
	"teller-desk/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator that knows the ledger amount and name rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// SendValidationError renders validator failures as VALIDATION_001 with one
// detail per field. Other errors are reported as a generic validation failure.
func SendValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	errorResponse := errors.NewValidationError(middleware.FieldErrors(validationErrs), getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// validationSummary flattens validator failures into one sentence for the
// dashboard feedback message
func validationSummary(err error) string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Invalid input."
	}
	fe := validationErrs[0]
	return "Invalid " + fe.Field() + ": " + middleware.FormatValidationError(fe) + "."
}

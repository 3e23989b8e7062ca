package validation

import (
	"reflect"
	"strings"
	"sync"

	"teller-desk/internal/currency"

	"github.com/go-playground/validator/v10"
)

// MaxNameLength bounds customer names accepted over the API.
const MaxNameLength = 100

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("customer_name", validateCustomerName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s with the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateDecimalAmount accepts strings ParseAmount understands: a decimal
// number with at most 2 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	_, err := currency.ParseAmount(fl.Field().String())
	return err == nil
}

// validatePositiveAmount accepts decimal strings greater than zero
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := currency.ParseAmount(fl.Field().String())
	return err == nil && amount.IsPositive()
}

// validateNonNegativeAmount accepts zero and positive decimal strings
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, err := currency.ParseAmount(fl.Field().String())
	return err == nil && !amount.IsNegative()
}

// validateCustomerName rejects blank names and names over MaxNameLength runes
func validateCustomerName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" {
		return false
	}
	return len([]rune(name)) <= MaxNameLength
}

package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is a shared validator instance
var Validate = validator.New()

// ValidateURL checks that value is an absolute http(s) URL.
func ValidateURL(value string) error {
	if err := Validate.Var(value, "required,http_url"); err != nil {
		return fmt.Errorf("%q is not a valid http(s) URL", value)
	}
	return nil
}

// ValidateOrigin checks a CORS origin. The wildcard origin is allowed.
func ValidateOrigin(value string) error {
	if value == "*" {
		return nil
	}
	return ValidateURL(value)
}

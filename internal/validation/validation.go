// Package validation holds the credential rules shared by the login and
// registration flows. All functions are pure and safe for concurrent use.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// emailPattern accepts "local@domain.tld"-shaped strings without whitespace.
// \s is ASCII-only in RE2, so vertical tab, Unicode separators and the BOM
// are listed explicitly. The domain itself is not checked.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "email_shape" is looser than the built-in "email" tag.
	if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return validate.Var(s, "email_shape") == nil
}

// IsValidPassword reports whether s satisfies the password policy.
func IsValidPassword(s string) bool {
	return validate.Var(s, "min=6") == nil
}

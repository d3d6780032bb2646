package customvalidator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	settingKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_.]*$`)
)

// RegisterCustomValidations wires the project's extra validation rules into a
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("strong_password", isStrongPassword); err != nil {
		return err
	}
	if err := v.RegisterValidation("slug", isSlug); err != nil {
		return err
	}
	return v.RegisterValidation("setting_key", isSettingKey)
}

// isStrongPassword: at least 8 characters with both a letter and a digit.
func isStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func isSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func isSettingKey(fl validator.FieldLevel) bool {
	return settingKeyPattern.MatchString(fl.Field().String())
}

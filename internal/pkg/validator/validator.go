package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// monthDayRe matches calendar dates in MM-DD form, e.g. "06-01".
var monthDayRe = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("monthday", func(fl validator.FieldLevel) bool {
		return monthDayRe.MatchString(fl.Field().String())
	})
}

// Validate runs struct tag validation.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the shared instance for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}

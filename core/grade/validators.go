package grade

import (
	"fmt"
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradecalc/core"
)

var (
	percentageTag  = "percentage"
	percentageText = "must be a percentage between 0 and 100"

	letterTag  = "letter"
	letterText = "unknown letter grade"
)

// InitValidators registers the grade validation tags & their translations.
// core.InitValidators must have been called first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(percentageTag, percentageValidation)
	core.RegisterCustomTranslation(validate, translator, percentageTag, percentageText)

	_ = validate.RegisterValidation(letterTag, letterValidation)
	_ = validate.RegisterTranslation(
		letterTag, translator,
		func(t ut.Translator) error { return t.Add(letterTag, letterText, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(letterTag, fe.Field())
			if match := ClosestLetter(fmt.Sprint(fe.Value())); match != "" {
				s += fmt.Sprintf(", did you mean %q?", match)
			}
			return s
		},
	)
}

// percentageValidation only allows numbers within [0, 100].
func percentageValidation(fl validator.FieldLevel) bool {
	fld := fl.Field()
	switch fld.Kind() {
	case reflect.Float32, reflect.Float64:
		return IsValidPercentage(fld.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IsValidPercentage(float64(fld.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IsValidPercentage(float64(fld.Uint()))
	}
	return false
}

// letterValidation only allows the letters of StandardScale (case-insensitive).
func letterValidation(fl validator.FieldLevel) bool {
	_, ok := BandByLetter(fl.Field().String())
	return ok
}

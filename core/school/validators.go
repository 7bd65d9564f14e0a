package school

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

var (
	// custom validation tags & texts
	weekdayTag  = "weekday"
	weekdayText = "must be a weekday name, e.g. Monday"

	hhmmTag   = "hhmm"
	hhmmText  = "must be a time in 24h HH:MM format"
	hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// InitValidators registers the schedule-specific validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(hhmmTag, hhmmValidation)
	core.RegisterCustomTranslation(validate, translator, hhmmTag, hhmmText)
}

// weekdayValidation only allows recognized weekday names, case-insensitively.
func weekdayValidation(fl validator.FieldLevel) bool {
	return WeekdayIndex(fl.Field().String()) != weekdayUnknown
}

// hhmmValidation only allows 24h "HH:MM" time strings.
func hhmmValidation(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

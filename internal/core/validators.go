package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	clockTag  = "clock"
	clockText = "{0} must be a time of day like 08:30 or 8:30 AM"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

// NewTranslator returns the English translator used for validation messages.
func NewTranslator() ut.Translator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	return trans
}

// InitValidators registers tag names, custom tags and translations on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(clockTag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := ParseClock(s)
		return err == nil
	})
	RegisterCustomTranslation(validate, translator, clockTag, clockText)
	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateErrors maps each failed field to a readable message.
func TranslateErrors(errs validator.ValidationErrors, translator ut.Translator) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Translate(translator)
	}
	return out
}

// CleanString trims s and optionally lower-cases it.
func CleanString(s string, lower bool) string {
	s = strings.TrimSpace(s)
	if lower {
		s = strings.ToLower(s)
	}
	return s
}

package validator

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"

	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/attendease/attendease/internal/model"
)

// Validator validates request payload structs and turns failures into
// field → message maps.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// New builds a Validator with English translations and the custom
// coursecodes and isodate rules registered.
func New() *Validator {
	v := govalidator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	// coursecodes: a semicolon-separated list of known course codes.
	_ = v.RegisterValidation("coursecodes", func(fl govalidator.FieldLevel) bool {
		for _, raw := range strings.Split(fl.Field().String(), ";") {
			code := model.CourseCode(strings.ToUpper(strings.TrimSpace(raw)))
			if !model.ValidCourseCode(code) {
				return false
			}
		}
		return true
	})
	_ = v.RegisterTranslation("coursecodes", trans,
		func(ut ut.Translator) error {
			return ut.Add("coursecodes", "{0} must be semicolon-separated course codes (A-F)", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("coursecodes", fe.Field())
			return t
		})

	// isodate: a yyyy-MM-dd calendar date.
	_ = v.RegisterValidation("isodate", func(fl govalidator.FieldLevel) bool {
		_, err := time.Parse(model.DateOnly, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("isodate", trans,
		func(ut ut.Translator) error {
			return ut.Add("isodate", "{0} must be a date in yyyy-MM-dd form", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("isodate", fe.Field())
			return t
		})

	return &Validator{validate: v, trans: trans}
}

// Check validates dst. Returns nil on success or a field → human-readable
// message map on failure.
func (v *Validator) Check(dst interface{}) map[string]string {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(v.trans)
		}
		return fields
	}

	// Not a validation error (e.g., an unsupported payload type).
	fields["detail"] = err.Error()
	return fields
}

// Package form validates submitted HTML forms with go-playground/validator
// and renders the failures as English messages keyed by form field.
package form

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

// Errors lists failed fields in struct order. A nil Errors means valid.
type Errors []FieldError

// First returns the first message, or "".
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	return e.Get(field) != ""
}

// Map returns field -> message.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// Validator checks structs tagged with `validate`. Field names in messages
// come from the `label` tag, falling back to the `form` tag.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with the English translations and the custom
// "year" and "amount" rules registered.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	rules := []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{"year", validYear, "{0} must be a four digit year"},
		{"amount", validAmount, "{0} must be a number greater than 0"},
	}
	for _, rule := range rules {
		if err := registerRule(v, trans, rule.tag, rule.fn, rule.text); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: v, trans: trans}, nil
}

func registerRule(v *validator.Validate, trans ut.Translator, tag string, fn validator.Func, text string) error {
	if err := v.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

// validAmount accepts decimal numbers greater than zero, with either a
// point or a comma as separator.
func validAmount(fl validator.FieldLevel) bool {
	s := strings.ReplaceAll(strings.TrimSpace(fl.Field().String()), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f > 0
}

// validYear accepts empty strings (use required to reject them) and years
// from 1900 up to the current year.
func validYear(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	if len(s) != 4 {
		return false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return y >= 1900 && y <= time.Now().Year()
}

// Validate returns the failed fields of s, or nil.
func (v *Validator) Validate(s any) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Errors{{Message: err.Error()}}
	}
	out := make(Errors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   formName(s, fe),
			Message: fe.Translate(v.trans),
		})
	}
	return out
}

// formName maps a failure back to the form input name so templates can mark
// the input.
func formName(s any, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]; name != "" {
				return name
			}
		}
	}
	return fe.Field()
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// Validate checks s with a shared Validator.
func Validate(s any) Errors {
	defaultOnce.Do(func() {
		v, err := New()
		if err != nil {
			panic("form: " + err.Error())
		}
		defaultV = v
	})
	return defaultV.Validate(s)
}

// Value returns the trimmed form value for key.
func Value(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator evaluates FieldRules and renders messages from a catalog.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	lang    string
	catalog Catalog
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	lang    string
	catalog Catalog
}

// WithLanguage selects one of the shipped catalogs.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.lang = lang
	}
}

// WithCatalog layers custom messages over the selected language.
// Keys present in c win over the shipped ones.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// New builds a Validator. The default language is English.
func New(opts ...Option) (*Validator, error) {
	o := options{lang: English}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := BuiltinCatalog(o.lang)
	if err != nil {
		if o.catalog == nil || !errors.Is(err, ErrLanguageNotSupported) {
			return nil, err
		}
		// A fully custom catalog may introduce a new language.
		base = make(Catalog, len(o.catalog))
	}
	for k, v := range o.catalog {
		base[k] = v
	}
	for _, key := range []string{KeyRequired, KeyMinLength, KeyMaxLength, KeyPattern, KeyCustom} {
		if _, ok := base[key]; !ok {
			return nil, fmt.Errorf("%w: %s catalog lacks %q", ErrInvalidCatalog, o.lang, key)
		}
	}

	return &Validator{lang: o.lang, catalog: base}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Language returns the language of the catalog messages are rendered from.
func (v *Validator) Language() string { return v.lang }

// Validate checks value against rule and returns the first violation message,
// or "" when the value is acceptable. label names the field in messages.
//
// Checks run in a fixed order: required, then length bounds, pattern and
// custom predicate. An empty optional value passes without further checks.
func (v *Validator) Validate(value string, rule FieldRule, label string) string {
	key, params := v.violation(value, rule, label)
	if key == "" {
		return ""
	}
	return v.message(rule, key, params)
}

// Check is Validate returning a ValidationError for form-level aggregation.
func (v *Validator) Check(field, value string, rule FieldRule, label string) (ValidationError, bool) {
	key, params := v.violation(value, rule, label)
	if key == "" {
		return ValidationError{}, true
	}
	if rule.MessageKey != "" {
		key = rule.MessageKey
	}
	values := make(map[string]any, len(params))
	for k, p := range params {
		values[k] = p
	}
	return ValidationError{
		Field:             field,
		Message:           v.message(rule, key, params),
		TranslationKey:    "validation." + key,
		TranslationValues: values,
	}, false
}

func (v *Validator) violation(value string, rule FieldRule, label string) (string, map[string]string) {
	params := map[string]string{"field": label}

	if strings.TrimSpace(value) == "" {
		if rule.Required {
			return KeyRequired, params
		}
		return "", nil
	}

	n := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && n < rule.MinLength {
		params["min"] = strconv.Itoa(rule.MinLength)
		return KeyMinLength, params
	}
	if rule.MaxLength > 0 && n > rule.MaxLength {
		params["max"] = strconv.Itoa(rule.MaxLength)
		return KeyMaxLength, params
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return KeyPattern, params
	}
	if rule.Custom != nil && !rule.Custom(value) {
		return KeyCustom, params
	}
	return "", nil
}

func (v *Validator) message(rule FieldRule, key string, params map[string]string) string {
	if rule.Message != "" {
		return rule.Message
	}
	if rule.MessageKey != "" {
		if msg, ok := v.catalog.Format(rule.MessageKey, params); ok {
			return msg
		}
	}
	msg, _ := v.catalog.Format(key, params)
	return msg
}

var defaultValidator = MustNew()

// Validate runs rule against value with the English catalog.
func Validate(value string, rule FieldRule, label string) string {
	return defaultValidator.Validate(value, rule, label)
}

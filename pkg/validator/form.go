package validator

import (
	"log/slog"

	"github.com/dmitrymomot/clinickit/pkg/logger"
)

// FormField binds a rule to a named value of a form.
type FormField struct {
	Name  string
	Label string
	rule  func(values map[string]string) FieldRule
}

// Field declares a field validated by a fixed rule.
func Field(name, label string, rule FieldRule) FormField {
	return FormField{
		Name:  name,
		Label: label,
		rule:  func(map[string]string) FieldRule { return rule },
	}
}

// DependentField declares a field whose rule is derived from the other
// submitted values, e.g. a confirmation that must equal the password.
func DependentField(name, label string, rule func(values map[string]string) FieldRule) FormField {
	return FormField{Name: name, Label: label, rule: rule}
}

// Form validates a set of fields in declaration order.
type Form struct {
	fields    []FormField
	validator *Validator
	log       *slog.Logger
}

// NewForm returns a form using the English catalog.
func NewForm(fields ...FormField) *Form {
	return &Form{fields: fields, validator: defaultValidator, log: logger.Discard()}
}

// WithValidator returns a copy of the form rendering messages with v.
func (f *Form) WithValidator(v *Validator) *Form {
	return &Form{fields: f.fields, validator: v, log: f.log}
}

// WithLogger returns a copy of the form that logs each rejected field at debug
// level. Only field names and message keys are logged, never submitted values.
func (f *Form) WithLogger(l *slog.Logger) *Form {
	if l == nil {
		l = logger.Discard()
	}
	return &Form{fields: f.fields, validator: f.validator, log: l}
}

// Fields returns the declared field names.
func (f *Form) Fields() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name
	}
	return names
}

// Validate checks every field and returns ValidationErrors with at most one
// entry per field, or nil when all values are acceptable. Missing values are
// treated as empty strings.
func (f *Form) Validate(values map[string]string) error {
	rules := make([]Rule, 0, len(f.fields))
	for _, field := range f.fields {
		verr, ok := f.validator.Check(field.Name, values[field.Name], field.rule(values), field.Label)
		rules = append(rules, Rule{
			Check: func() bool { return ok },
			Error: verr,
		})
	}
	err := Apply(rules...)
	for _, verr := range ExtractValidationErrors(err) {
		f.log.Debug("form field rejected",
			logger.Component("validator"),
			logger.Field(verr.Field),
			slog.String("key", verr.TranslationKey),
		)
	}
	return err
}

// Errors maps each failing field to its message. The map is empty, not nil,
// when the form is valid.
func (f *Form) Errors(values map[string]string) map[string]string {
	out := make(map[string]string)
	for _, verr := range ExtractValidationErrors(f.Validate(values)) {
		out[verr.Field] = verr.Message
	}
	return out
}

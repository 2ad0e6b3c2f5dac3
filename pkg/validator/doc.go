// Package validator evaluates declarative field rules and reports the first
// human-readable violation.
//
// A FieldRule combines optional constraints that are checked in a fixed
// order: required, minimum and maximum length (in runes), pattern, and a
// custom predicate. An empty optional value is accepted without running the
// remaining checks.
//
//	msg := validator.Validate(input, validator.FieldRule{Required: true, MinLength: 3}, "Username")
//	if msg != "" {
//		// show msg next to the field
//	}
//
// Messages come from embedded YAML catalogs (English and Vietnamese):
//
//	v := validator.MustNew(validator.WithLanguage(validator.Vietnamese))
//	v.Validate("", validator.Phone, "Số điện thoại") // "Số điện thoại không hợp lệ"
//
// Predefined templates cover phone numbers, email, passwords, names, national
// ID numbers, age, insurance numbers and one-time codes. ConfirmPassword builds
// a rule bound to the password entered earlier in the same form.
//
// Forms aggregate rules over named values and return ValidationErrors:
//
//	form := validator.NewForm(
//		validator.Field("email", "Email", validator.Email),
//		validator.Field("password", "Password", validator.Password),
//		validator.DependentField("confirm", "Confirm password", func(v map[string]string) validator.FieldRule {
//			return validator.ConfirmPassword(v["password"])
//		}),
//	)
//	if err := form.Validate(values); err != nil {
//		errs := validator.ExtractValidationErrors(err)
//		_ = errs
//	}
//
// A malformed pattern panics when the rule is built. Panics raised by custom
// predicates propagate to the caller.
package validator

package hospital

import (
	"strings"

	"github.com/dmitrymomot/clinickit/pkg/sanitizer"
	"github.com/dmitrymomot/clinickit/pkg/validator"
)

// Form field names shared by the patient app and the admin dashboard.
const (
	FieldFullName        = "fullName"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldCurrentPassword = "currentPassword"
	FieldIdentityNumber  = "identityNumber"
	FieldInsuranceNumber = "insuranceNumber"
	FieldAge             = "age"
	FieldAddress         = "address"
)

func confirmOf(field string) func(map[string]string) validator.FieldRule {
	return func(values map[string]string) validator.FieldRule {
		return validator.ConfirmPassword(values[field])
	}
}

// SignUpForm validates patient self-registration.
func SignUpForm() *validator.Form {
	return validator.NewForm(
		validator.Field(FieldFullName, "Full name", validator.Name),
		validator.Field(FieldPhone, "Phone number", validator.Phone),
		validator.Field(FieldEmail, "Email", validator.Email),
		validator.Field(FieldPassword, "Password", validator.Password),
		validator.DependentField(FieldConfirmPassword, "Confirm password", confirmOf(FieldPassword)),
	)
}

// PatientForm validates a patient record entered by reception staff.
// Insurance number and address are optional.
func PatientForm() *validator.Form {
	return validator.NewForm(
		validator.Field(FieldFullName, "Full name", validator.Name),
		validator.Field(FieldPhone, "Phone number", validator.Phone),
		validator.Field(FieldIdentityNumber, "National ID", validator.NationalID),
		validator.Field(FieldInsuranceNumber, "Insurance number", validator.InsuranceNumber),
		validator.Field(FieldAge, "Age", validator.Age),
		validator.Field(FieldAddress, "Address", validator.FieldRule{MaxLength: 255}),
	)
}

// ChangePasswordForm validates a password change. The new password must
// differ from the current one.
func ChangePasswordForm() *validator.Form {
	return validator.NewForm(
		validator.Field(FieldCurrentPassword, "Current password", validator.FieldRule{Required: true}),
		validator.DependentField(FieldPassword, "New password", func(values map[string]string) validator.FieldRule {
			current := values[FieldCurrentPassword]
			if current != "" && values[FieldPassword] == current {
				return validator.FieldRule{
					Required:   true,
					Custom:     func(string) bool { return false },
					MessageKey: validator.KeyPasswordReused,
				}
			}
			return validator.Password
		}),
		validator.DependentField(FieldConfirmPassword, "Confirm password", confirmOf(FieldPassword)),
	)
}

var inputCleaners = map[string]func(string) string{
	FieldFullName:        sanitizer.Name,
	FieldPhone:           sanitizer.NormalizePhone,
	FieldEmail:           sanitizer.NormalizeEmail,
	FieldIdentityNumber:  sanitizer.Trim,
	FieldInsuranceNumber: sanitizer.Compose(sanitizer.Trim, strings.ToUpper),
	FieldAge:             sanitizer.Trim,
	FieldAddress:         sanitizer.CollapseWhitespace,
}

// Normalize returns a cleaned copy of submitted form values: names and
// addresses have whitespace collapsed, phone separators are removed and
// emails are lowercased. Passwords are never altered.
func Normalize(values map[string]string) map[string]string {
	return sanitizer.Fields(values, inputCleaners)
}

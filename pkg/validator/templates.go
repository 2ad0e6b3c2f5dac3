package validator

import (
	"strconv"
	"strings"
)

// Message keys for the predefined templates.
const (
	KeyPhone           = "phone"
	KeyEmail           = "email"
	KeyPassword        = "password"
	KeyConfirmPassword = "confirm_password"
	KeyPasswordReused  = "password_reused"
	KeyName            = "name"
	KeyNationalID      = "national_id"
	KeyAge             = "age"
	KeyInsuranceNumber = "insurance_number"
	KeyOTP             = "otp"
)

const (
	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 50
	MinAge            = 1
	MaxAge            = 120
)

// Predefined rules for common patient and staff fields.
var (
	// Phone accepts Vietnamese numbers in local (0...) or +84 form.
	Phone = FieldRule{
		Required:   true,
		Pattern:    Pattern(`^(\+84|0)\d{9,10}$`),
		MessageKey: KeyPhone,
	}

	Email = FieldRule{
		Required:   true,
		Pattern:    Pattern(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		MessageKey: KeyEmail,
	}

	// Password needs a lowercase letter, an uppercase letter and a digit.
	Password = FieldRule{
		Required:  true,
		MinLength: PasswordMinLength,
		Pattern: AllOf(
			Pattern(`[a-z]`),
			Pattern(`[A-Z]`),
			Pattern(`\d`),
		),
		MessageKey: KeyPassword,
	}

	// Name allows letters with diacritics and spaces.
	Name = FieldRule{
		Required:   true,
		MinLength:  NameMinLength,
		MaxLength:  NameMaxLength,
		Pattern:    Pattern(`^[\p{L}\p{M}\s]+$`),
		MessageKey: KeyName,
	}

	// NationalID is the 12 digit citizen identity card number.
	NationalID = FieldRule{
		Required:   true,
		Pattern:    Pattern(`^\d{12}$`),
		MessageKey: KeyNationalID,
	}

	Age = FieldRule{
		Required:   true,
		Custom:     ageInRange,
		MessageKey: KeyAge,
	}

	InsuranceNumber = FieldRule{
		Pattern:    Pattern(`^\d{10,15}$`),
		MessageKey: KeyInsuranceNumber,
	}

	OTP = FieldRule{
		Required:   true,
		Pattern:    Pattern(`^\d{6}$`),
		MessageKey: KeyOTP,
	}
)

// ConfirmPassword returns a rule that accepts only the exact password value.
func ConfirmPassword(password string) FieldRule {
	return FieldRule{
		Required:   true,
		Custom:     func(value string) bool { return value == password },
		MessageKey: KeyConfirmPassword,
	}
}

func ageInRange(value string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return n >= MinAge && n <= MaxAge
}

package sanitizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	dotRunRegex    = regexp.MustCompile(`\.{2,}`)
	phoneSeparator = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")
)

// NormalizeEmail trims, lowercases and collapses repeated dots in the local
// part. Values without exactly one @ are only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	local = strings.Trim(dotRunRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone strips common separators and keeps a leading plus sign.
// "0912 345.678" becomes "0912345678"; "+84 912-345-678" becomes "+84912345678".
func NormalizePhone(phone string) string {
	phone = phoneSeparator.Replace(strings.TrimSpace(phone))
	if rest, ok := strings.CutPrefix(phone, "+"); ok {
		return "+" + KeepDigits(rest)
	}
	return KeepDigits(phone)
}

// MaskPhone keeps the last three digits, e.g. "*******678".
func MaskPhone(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) <= 3 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-3) + digits[len(digits)-3:]
}

// MaskEmail keeps the first character of the local part, e.g. "a***@x.vn".
// One asterisk replaces each remaining character.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return strings.Repeat("*", utf8.RuneCountInString(email))
	}
	_, size := utf8.DecodeRuneInString(local)
	return local[:size] + strings.Repeat("*", utf8.RuneCountInString(local[size:])) + "@" + domain
}

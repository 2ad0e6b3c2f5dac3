package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinickit/pkg/validator"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("required empty value names the field", func(t *testing.T) {
		t.Parallel()
		msg := validator.Validate("", validator.FieldRule{Required: true}, "Tên")
		assert.NotEmpty(t, msg)
		assert.Contains(t, msg, "Tên")
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		t.Parallel()
		msg := validator.Validate("   ", validator.FieldRule{Required: true}, "Name")
		assert.Equal(t, "Name is required", msg)
	})

	t.Run("empty optional value skips other checks", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, validator.Validate("", validator.FieldRule{MinLength: 5}, "X"))
		assert.Empty(t, validator.Validate("  ", validator.FieldRule{
			Pattern: validator.Pattern(`^\d+$`),
			Custom:  func(string) bool { return false },
		}, "X"))
	})

	t.Run("explicit message overrides generated one", func(t *testing.T) {
		t.Parallel()
		msg := validator.Validate("short", validator.FieldRule{MinLength: 8, Message: "too short"}, "Password")
		assert.Equal(t, "too short", msg)
	})

	t.Run("min and max length", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{MinLength: 3, MaxLength: 5}
		assert.Equal(t, "Code must be at least 3 characters", validator.Validate("ab", rule, "Code"))
		assert.Equal(t, "Code must not exceed 5 characters", validator.Validate("abcdef", rule, "Code"))
		assert.Empty(t, validator.Validate("abcd", rule, "Code"))
	})

	t.Run("length counts runes", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{MaxLength: 3}
		assert.Empty(t, validator.Validate("Hòa", rule, "Name"))
	})

	t.Run("pattern", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{Pattern: validator.Pattern(`^\d+$`)}
		assert.Equal(t, "Zip has an invalid format", validator.Validate("12a", rule, "Zip"))
		assert.Empty(t, validator.Validate("123", rule, "Zip"))
	})

	t.Run("custom predicate", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{Custom: func(v string) bool { return v == "ok" }}
		assert.Equal(t, "Flag is invalid", validator.Validate("no", rule, "Flag"))
		assert.Empty(t, validator.Validate("ok", rule, "Flag"))
	})

	t.Run("first violation wins", func(t *testing.T) {
		t.Parallel()
		called := false
		rule := validator.FieldRule{
			MinLength: 10,
			Pattern:   validator.Pattern(`^\d+$`),
			Custom:    func(string) bool { called = true; return false },
		}
		assert.Equal(t, "F must be at least 10 characters", validator.Validate("abc", rule, "F"))
		assert.False(t, called)
	})

	t.Run("message key resolves from catalog", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{Required: true, MessageKey: validator.KeyEmail}
		assert.Equal(t, "Invalid email address", validator.Validate("", rule, "Email"))
	})

	t.Run("unknown message key falls back to generated", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{Required: true, MessageKey: "nope"}
		assert.Equal(t, "Email is required", validator.Validate("", rule, "Email"))
	})

	t.Run("panicking predicate propagates", func(t *testing.T) {
		t.Parallel()
		rule := validator.FieldRule{Custom: func(string) bool { panic("boom") }}
		assert.Panics(t, func() { validator.Validate("x", rule, "X") })
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("vietnamese catalog", func(t *testing.T) {
		t.Parallel()
		v, err := validator.New(validator.WithLanguage(validator.Vietnamese))
		require.NoError(t, err)
		assert.Equal(t, validator.Vietnamese, v.Language())
		assert.Equal(t, "Tên không được để trống", v.Validate("", validator.FieldRule{Required: true}, "Tên"))
		assert.Equal(t, "Số điện thoại không hợp lệ", v.Validate("123", validator.Phone, "Số điện thoại"))
	})

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()
		_, err := validator.New(validator.WithLanguage("fr"))
		require.ErrorIs(t, err, validator.ErrLanguageNotSupported)
	})

	t.Run("custom catalog overrides keys", func(t *testing.T) {
		t.Parallel()
		v, err := validator.New(validator.WithCatalog(validator.Catalog{
			validator.KeyRequired: "please fill in %{field}",
		}))
		require.NoError(t, err)
		assert.Equal(t, "please fill in Name", v.Validate("", validator.FieldRule{Required: true}, "Name"))
	})

	t.Run("custom catalog must be complete for new language", func(t *testing.T) {
		t.Parallel()
		_, err := validator.New(
			validator.WithLanguage("fr"),
			validator.WithCatalog(validator.Catalog{validator.KeyRequired: "%{field} est requis"}),
		)
		require.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})

	t.Run("complete custom catalog adds a language", func(t *testing.T) {
		t.Parallel()
		v, err := validator.New(
			validator.WithLanguage("fr"),
			validator.WithCatalog(validator.Catalog{
				validator.KeyRequired:  "%{field} est requis",
				validator.KeyMinLength: "%{field}: au moins %{min}",
				validator.KeyMaxLength: "%{field}: au plus %{max}",
				validator.KeyPattern:   "%{field}: format invalide",
				validator.KeyCustom:    "%{field} invalide",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Nom est requis", v.Validate("", validator.FieldRule{Required: true}, "Nom"))
	})
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"en", "vi"}, validator.SupportedLanguages())

	en, err := validator.BuiltinCatalog(validator.English)
	require.NoError(t, err)
	vi, err := validator.BuiltinCatalog(validator.Vietnamese)
	require.NoError(t, err)
	for key := range en {
		assert.Contains(t, vi, key, "vi catalog lacks %s", key)
	}

	en[validator.KeyRequired] = "mutated"
	again, err := validator.BuiltinCatalog(validator.English)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[validator.KeyRequired])

	msg, ok := validator.Catalog{"k": "%{a} and %{b}"}.Format("k", map[string]string{"a": "x"})
	assert.True(t, ok)
	assert.Equal(t, "x and %{b}", msg)

	_, err = validator.ParseCatalogs([]byte("not: [valid"))
	require.ErrorIs(t, err, validator.ErrInvalidCatalog)
	_, err = validator.ParseCatalogs([]byte(""))
	require.ErrorIs(t, err, validator.ErrInvalidCatalog)
}

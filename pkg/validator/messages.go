package validator

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Message keys for generated violations.
const (
	KeyRequired  = "required"
	KeyMinLength = "min_length"
	KeyMaxLength = "max_length"
	KeyPattern   = "pattern"
	KeyCustom    = "custom"
)

// Languages shipped with the package.
const (
	English    = "en"
	Vietnamese = "vi"
)

//go:embed messages.yaml
var builtinMessages []byte

var builtinCatalogs = mustParseCatalogs(builtinMessages)

// Catalog maps message keys to templates with %{name} placeholders.
type Catalog map[string]string

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Format renders key with params. Unknown placeholders are left as is.
func (c Catalog) Format(key string, params map[string]string) (string, bool) {
	tmpl, ok := c[key]
	if !ok {
		return "", false
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	}), true
}

// ParseCatalogs reads a YAML document of the form {lang: {key: template}}.
func ParseCatalogs(data []byte) (map[string]Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no languages defined", ErrInvalidCatalog)
	}
	out := make(map[string]Catalog, len(raw))
	for lang, msgs := range raw {
		if lang == "" || msgs == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidCatalog, lang)
		}
		out[lang] = Catalog(msgs)
	}
	return out, nil
}

// BuiltinCatalog returns a copy of the shipped catalog for lang.
func BuiltinCatalog(lang string) (Catalog, error) {
	c, ok := builtinCatalogs[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}
	cp := make(Catalog, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp, nil
}

// SupportedLanguages lists the shipped catalogs.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(builtinCatalogs))
	for lang := range builtinCatalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func mustParseCatalogs(data []byte) map[string]Catalog {
	c, err := ParseCatalogs(data)
	if err != nil {
		panic(err)
	}
	return c
}

package search

import (
	"fmt"
	"reflect"
	"strings"
)

// Filter keeps the records where any field, rendered as text and normalized,
// contains the normalized term. An empty or whitespace-only term returns data
// itself. The input slice is never modified.
func Filter[T any](data []T, term string, fields []Field[T], normalize Normalizer) []T {
	if strings.TrimSpace(term) == "" {
		return data
	}
	if normalize == nil {
		normalize = FoldCase
	}
	needle := normalize(term)

	out := make([]T, 0, len(data))
	for _, rec := range data {
		if matches(rec, needle, fields, normalize) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, needle string, fields []Field[T], normalize Normalizer) bool {
	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		text, ok := stringify(f.Value(rec))
		if !ok {
			continue
		}
		if strings.Contains(normalize(text), needle) {
			return true
		}
	}
	return false
}

// stringify renders a field value as text. Nil values and nil pointers are
// reported as absent.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return x.String(), true
	}
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return "", false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
	}
	return fmt.Sprint(rv.Interface()), true
}

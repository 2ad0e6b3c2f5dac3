package logger

import (
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SearchID records the correlation id of a single search request.
func SearchID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("search_id", id)
}

// Sequence records the request generation of a search.
func Sequence(seq uint64) slog.Attr {
	return slog.Uint64("seq", seq)
}

// Term records only the rune length of a search term.
// Terms typed by staff usually contain patient names and must not reach the logs.
func Term(term string) slog.Attr {
	return slog.Int("term_len", utf8.RuneCountInString(term))
}

// Results records the number of records a search produced.
func Results(n int) slog.Attr {
	return slog.Int("results", n)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

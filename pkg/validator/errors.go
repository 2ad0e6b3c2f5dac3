package validator

import "errors"

var (
	// ErrLanguageNotSupported is returned when no message catalog exists for a language.
	ErrLanguageNotSupported = errors.New("validator: language not supported")

	// ErrInvalidCatalog is returned when a message catalog cannot be parsed.
	ErrInvalidCatalog = errors.New("validator: invalid message catalog")
)

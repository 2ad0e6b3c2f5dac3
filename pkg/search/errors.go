package search

import "errors"

var (
	// ErrNilSink is returned by New when no result sink is supplied.
	ErrNilSink = errors.New("search: result sink is nil")

	// ErrSearcherPanic wraps a panic raised by an external searcher.
	ErrSearcherPanic = errors.New("search: external searcher panicked")

	// ErrNilSearcher is returned by wrappers that need a searcher to delegate to.
	ErrNilSearcher = errors.New("search: searcher is nil")

	// ErrUnknownField is returned by ByName when a field cannot be resolved on the record type.
	ErrUnknownField = errors.New("search: unknown field")
)

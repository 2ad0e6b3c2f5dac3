// Package search implements the debounced search/filter engine used by the
// admin and doctor tables.
//
// An Engine receives every keystroke through Search, waits for the debounce
// window (300ms by default) to pass without further input, then either
// filters its source collection locally or calls an external Searcher, and
// hands the result to the Sink supplied at construction.
//
//	engine, err := search.New(func(rows []hospital.Patient) {
//	    table.SetRows(rows)
//	},
//	    search.WithSource(patients),
//	    search.WithFields(hospital.PatientFields()...),
//	)
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	engine.Search("trần")  // debounced
//	engine.Flush()         // Enter key: run now
//	engine.Clear()         // clear button: full list, no delay
//
// # Ordering
//
// Each search that runs gets a sequence number. A result is delivered only if
// its sequence number is still the latest; slower, superseded requests are
// cancelled through their context and their results dropped. Close cancels the
// pending timer and any in-flight request, after which the sink is never
// called.
//
// # Local filtering
//
// Filter keeps a record when any selected field, converted to text and
// normalized, contains the normalized term. FoldCase (the default) compares
// case-insensitively using Unicode case folding; FoldDiacritics also ignores
// Vietnamese tone marks. Nil field values never match. An empty or
// whitespace-only term yields the source collection itself.
//
// # External searchers
//
// The pg, opensearch, mongo and redis packages build Searcher values backed by
// their stores. Memoize adds an in-process cache. Errors and panics raised by a
// Searcher are logged and turned into an empty result; they never reach the
// sink as errors.
package search

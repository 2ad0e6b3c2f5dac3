package search

import "time"

// Config holds engine settings loaded from the environment.
type Config struct {
	Delay          time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`         // Delay is the debounce window after the last keystroke.
	Timeout        time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`            // Timeout bounds a single external search. Zero disables it.
	FoldDiacritics bool          `env:"SEARCH_FOLD_DIACRITICS" envDefault:"false"` // FoldDiacritics makes local filtering accent-insensitive.
}

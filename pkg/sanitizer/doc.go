// Package sanitizer normalizes user input before it is validated or stored.
//
// Transforms are plain func(string) string values that can be chained:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.CollapseWhitespace)
//	name := clean("  Nguyễn   Văn\tAn ")
//
// Fields applies per-key transforms to a submitted form. The Mask helpers
// shorten contact details for display, e.g. the phone an OTP was sent to.
package sanitizer

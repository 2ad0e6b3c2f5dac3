package validator

import "regexp"

// Matcher reports whether a value has the expected format.
// *regexp.Regexp implements it.
type Matcher interface {
	MatchString(s string) bool
}

// MatchFunc adapts a plain function to Matcher.
type MatchFunc func(string) bool

func (f MatchFunc) MatchString(s string) bool { return f(s) }

// AllOf matches when every matcher matches. It expresses lookahead-style
// patterns ("contains a digit and an uppercase letter") that RE2 cannot.
func AllOf(matchers ...Matcher) Matcher {
	return MatchFunc(func(s string) bool {
		for _, m := range matchers {
			if !m.MatchString(s) {
				return false
			}
		}
		return true
	})
}

// Pattern compiles expr and panics if it is malformed. A broken pattern is a
// programming error and should surface when the rule is built.
func Pattern(expr string) Matcher {
	return regexp.MustCompile(expr)
}

// FieldRule declares the constraints of one form field. Zero values disable
// a constraint. Rules hold no per-call state and can be shared.
type FieldRule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   Matcher
	Custom    func(value string) bool

	// Message replaces every generated message for this rule.
	Message string
	// MessageKey names a catalog entry used when Message is empty.
	MessageKey string
}

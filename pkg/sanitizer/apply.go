package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Fields applies per-key transforms to a copy of values. Keys without a
// transform are copied unchanged.
func Fields(values map[string]string, transforms map[string]func(string) string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if t, ok := transforms[k]; ok && t != nil {
			v = t(v)
		}
		out[k] = v
	}
	return out
}

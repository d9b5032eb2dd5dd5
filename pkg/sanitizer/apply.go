package sanitizer

// Apply runs value through transforms in order and returns the result.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose chains transforms into a single reusable function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

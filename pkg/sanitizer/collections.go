package sanitizer

import "maps"

// Deduplicate keeps the first occurrence of every item, preserving order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// MergeMaps returns a new map with the entries of ms; later maps win on duplicate keys.
// It returns nil when every input is nil.
func MergeMaps[K comparable, V any](ms ...map[K]V) map[K]V {
	var result map[K]V
	for _, m := range ms {
		if m == nil {
			continue
		}
		if result == nil {
			result = make(map[K]V, len(m))
		}
		maps.Copy(result, m)
	}
	return result
}

// Package sanitizer holds small, pure helpers for transforming plain data: order
// preserving deduplication, map merging, deep copies of JSON-like payloads and
// Apply/Compose for building transformation pipelines.
//
//	clean := sanitizer.Compose(stripSecrets, normalizeEmail)
//	payload = clean(sanitizer.CloneMap(payload))
//
// None of the helpers mutate their arguments or return errors.
package sanitizer

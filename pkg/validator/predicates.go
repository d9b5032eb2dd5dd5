package validator

import (
	"net/mail"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

// IsString accepts any string value, including the empty string.
func IsString(value any) bool {
	_, ok := value.(string)
	return ok
}

// Required accepts strings that are not blank after trimming whitespace.
func Required(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

// MinLen accepts strings at least min characters long.
func MinLen(min int) Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && utf8.RuneCountInString(s) >= min
	}
}

// MaxLen accepts strings at most max characters long.
func MaxLen(max int) Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && utf8.RuneCountInString(s) <= max
	}
}

// Email accepts a single bare address with a dotted domain.
func Email(value any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// Min accepts numbers greater than or equal to min.
func Min(min float64) Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n >= min
	}
}

// Max accepts numbers less than or equal to max.
func Max(max float64) Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n <= max
	}
}

// InList accepts values equal to one of allowed.
func InList(allowed ...any) Predicate {
	return func(value any) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(a, value) {
				return true
			}
		}
		return false
	}
}

// Match accepts strings matching pattern. It panics if pattern does not compile.
func Match(pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return func(value any) bool {
		s, ok := value.(string)
		return ok && re.MatchString(s)
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(value any) bool {
		return !p(value)
	}
}

func toFloat(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

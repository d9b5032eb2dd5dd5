package validator

// Option configures how schemas are evaluated.
type Option func(*options)

type options struct {
	allFailures bool
}

// WithAllFailures reports every failing rule of a field instead of stopping at
// the first one.
func WithAllFailures() Option {
	return func(o *options) {
		o.allFailures = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

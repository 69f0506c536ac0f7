package collections

import "github.com/sirupsen/logrus"

const defaultCapacity = 4

type Option func(*options)

type options struct {
	capacity int
	logger   logrus.FieldLogger
}

func DefaultOptions() []Option {
	return []Option{
		WithInitialCapacity(defaultCapacity),
		WithLogger(logrus.StandardLogger()),
	}
}

// WithInitialCapacity sets the size of the first backing buffer.
// Non-positive sizes fall back to the default of 4.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = defaultCapacity
		}
		o.capacity = n
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range append(DefaultOptions(), opts...) {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}
	return o
}

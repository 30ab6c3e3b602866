package nodeclient

import (
	kitlog "github.com/go-kit/log"
)

type options struct {
	logger kitlog.Logger
	port   string
}

func defaultOptions() options {
	return options{
		logger: kitlog.NewNopLogger(),
		port:   DefaultPort,
	}
}

// Option configures a handle created by Connect.
type Option func(o *options)

// WithLogger sets the logger used by the handle. Handles do not log during
// normal operation, only connection lifecycle events at debug level.
func WithLogger(logger kitlog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPort overrides the control port appended to addresses without one.
func WithPort(port string) Option {
	return func(o *options) {
		o.port = port
	}
}

package importer

import "github.com/rs/zerolog"

// options configures an Importer.
type options struct {
	logger      zerolog.Logger
	rowOutcomes bool
}

func defaultOptions() *options {
	return &options{
		logger: zerolog.Nop(),
	}
}

// Option configures an Importer.
type Option func(*options)

// WithLogger attaches a logger. The importer emits a debug event per row and
// an info event with the batch summary.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRowOutcomes records a per-row outcome list in the summary in addition
// to the aggregate counts.
func WithRowOutcomes() Option {
	return func(o *options) {
		o.rowOutcomes = true
	}
}

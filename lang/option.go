package lang

import "github.com/novarc-lang/novarc/log"

// DefaultMaxDepth is the default maximum function call depth for evaluation.
// Users may modify this before evaluating to change the default.
var DefaultMaxDepth = 1000

// options holds configuration shared by parsing and evaluation.
type options struct {
	maxDepth int
	logger   log.Logger
}

// Option configures parsing or evaluation behavior.
type Option func(*options)

// WithMaxDepth sets the maximum function call depth for evaluation.
// Exceeding the limit fails with a [RecursionLimitError]. Values less than
// one disable the ceiling, leaving recursion bounded only by the process
// call stack.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// makeOptions applies defaults and the given functional options.
func makeOptions(opts ...Option) options {
	o := options{maxDepth: DefaultMaxDepth}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

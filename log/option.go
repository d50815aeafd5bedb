package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages. If a nil writer is provided, [io.Discard] is used.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the log output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the timestamp layout.
// Layout names from the time package ("RFC3339", "Kitchen", ...) are
// recognized in addition to literal layouts; an empty layout suppresses
// timestamps entirely.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.timeLayout = namedTimeLayout(layout)

		return c
	}
}

// WithCaller returns a functional option that enables or disables caller
// information in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty returns a functional option that enables or disables colorized
// text output. It has no effect on the JSON format.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

// namedTimeLayout maps well-known layout names from the time package to
// their layout strings, passing unrecognized values through unchanged.
func namedTimeLayout(layout string) string {
	switch layout {
	case "RFC3339":
		return "2006-01-02T15:04:05Z07:00"
	case "RFC3339Nano":
		return "2006-01-02T15:04:05.999999999Z07:00"
	case "RFC1123":
		return "Mon, 02 Jan 2006 15:04:05 MST"
	case "Kitchen":
		return "3:04PM"
	case "Stamp":
		return "Jan _2 15:04:05"
	case "StampMilli":
		return "Jan _2 15:04:05.000"
	case "DateTime":
		return "2006-01-02 15:04:05"
	case "TimeOnly":
		return "15:04:05"
	default:
		return layout
	}
}

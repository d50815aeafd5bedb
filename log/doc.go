// Package log provides a thin, concurrency-safe wrapper over [log/slog]
// with an additional Trace level, selectable JSON/text output formats, an
// optional colorized text handler, and a package-level default logger
// configurable via functional options.
//
// The zero value of [Logger] is valid and discards all messages, so
// libraries can accept a Logger without forcing callers to construct one.
package log

package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput   = NewError("failed to read input")
	ErrInvalidExpr = NewError("invalid expression node")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// SyntaxError describes a single parse failure anchored to a source span.
type SyntaxError struct {
	Msg  string
	Span Span
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Msg
}

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Msg),
		slog.Int("start", e.Span.Start),
		slog.Int("end", e.Span.End),
	)
}

// ParseError aggregates the syntax errors produced while parsing one source
// string. Its Error method renders the first error with a source snippet and
// caret marker; consumers wanting richer diagnostics read Errors and Source
// directly.
type ParseError struct {
	Errors []*SyntaxError
	Source string // The original source input
}

// NewParseError creates a ParseError from the collected syntax errors.
func NewParseError(errs []*SyntaxError, source string) *ParseError {
	return &ParseError{
		Errors: errs,
		Source: source,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if len(e.Errors) == 0 {
		return "parse error"
	}

	if e.Source != "" {
		return e.formatWithContext()
	}

	return e.Errors[0].Msg
}

// Position converts a byte offset into 1-based line and column numbers
// within the original source.
func (e *ParseError) Position(offset int) (line, col int) {
	line, col = 1, 1

	for i := 0; i < offset && i < len(e.Source); i++ {
		if e.Source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}

// formatWithContext formats the first parse error with source code context.
func (e *ParseError) formatWithContext() string {
	first := e.Errors[0]
	line, col := e.Position(first.Span.Start)
	lines := strings.Split(e.Source, "\n")

	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(col))
	buf.WriteString(": ")
	buf.WriteString(first.Msg)
	buf.WriteString("\n")

	// Show the offending line if within bounds
	if line > 0 && line <= len(lines) {
		text := lines[line-1]

		buf.WriteString("  ")
		buf.WriteString(strconv.Itoa(line))
		buf.WriteString(" | ")
		buf.WriteString(text)
		buf.WriteRune('\n')

		// Marker pointing at the error column, extended over the span.
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		lineNumWidth := len(strconv.Itoa(line))
		padding := strings.Repeat(" ", lineNumWidth+5+col-1)

		width := first.Span.End - first.Span.Start
		if width < 1 || col-1+width > len(text)+1 {
			width = 1
		}

		buf.WriteString(padding + strings.Repeat("^", width) + "\n")
	}

	return buf.String()
}

// EvalError is implemented by every semantic (evaluation) error type. The
// parser and evaluator never share error taxonomies: syntax errors are
// [SyntaxError] values inside a [ParseError], semantic errors implement this
// interface.
type EvalError interface {
	error
	evalError()
}

// UnboundVariableError reports a variable reference with no matching binding
// on the variable stack.
type UnboundVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("Cannot find variable `%s` in scope", e.Name)
}

// LogValue implements slog.LogValuer.
func (e *UnboundVariableError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unbound variable"),
		slog.String("name", e.Name),
	)
}

// UndefinedFunctionError reports a call to a function with no matching entry
// on the function stack.
type UndefinedFunctionError struct {
	Name string
}

// Error implements the error interface.
func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("Cannot find function `%s` in scope", e.Name)
}

// LogValue implements slog.LogValuer.
func (e *UndefinedFunctionError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "undefined function"),
		slog.String("name", e.Name),
	)
}

// ArityMismatchError reports a call whose argument count does not match the
// parameter count of the resolved function.
type ArityMismatchError struct {
	Name     string
	Expected int
	Found    int
}

// Error implements the error interface.
func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf(
		"Wrong number of arguments for function `%s`: expected %d, found %d",
		e.Name, e.Expected, e.Found,
	)
}

// LogValue implements slog.LogValuer.
func (e *ArityMismatchError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "arity mismatch"),
		slog.String("name", e.Name),
		slog.Int("expected", e.Expected),
		slog.Int("found", e.Found),
	)
}

// RecursionLimitError reports that the configured maximum call depth was
// exceeded. See [WithMaxDepth].
type RecursionLimitError struct {
	Name  string
	Depth int
}

// Error implements the error interface.
func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf(
		"Maximum call depth %d exceeded in function `%s`",
		e.Depth, e.Name,
	)
}

// LogValue implements slog.LogValuer.
func (e *RecursionLimitError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "recursion limit exceeded"),
		slog.String("name", e.Name),
		slog.Int("depth", e.Depth),
	)
}

func (*UnboundVariableError) evalError()   {}
func (*UndefinedFunctionError) evalError() {}
func (*ArityMismatchError) evalError()     {}
func (*RecursionLimitError) evalError()    {}

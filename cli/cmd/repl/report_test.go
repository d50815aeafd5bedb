package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/novarc-lang/novarc/lang"
)

func TestRenderParseError(t *testing.T) {
	_, err := lang.ParseString(t.Context(), "let x 1; x")

	var perr *lang.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}

	out := renderParseError(perr)

	if !strings.Contains(out, "expected '=' after let binding name") {
		t.Errorf("missing error message in report:\n%s", out)
	}

	if !strings.Contains(out, "let x 1; x") {
		t.Errorf("missing source line in report:\n%s", out)
	}

	if !strings.Contains(out, "^") {
		t.Errorf("missing caret marker in report:\n%s", out)
	}
}

func TestRenderParseError_SpanWidth(t *testing.T) {
	input := "1 + (2"

	_, err := lang.ParseString(t.Context(), input)

	var perr *lang.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}

	out := renderParseError(perr)

	// The unmatched parenthesis span covers "(2", so the marker is two
	// carets wide.
	if !strings.Contains(out, "^^") {
		t.Errorf("expected span-wide caret marker in report:\n%s", out)
	}
}

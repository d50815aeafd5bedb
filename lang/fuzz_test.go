package lang

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParseString tests the parser with random inputs to find edge cases.
func FuzzParseString(f *testing.F) {
	// Seed corpus with known valid inputs
	f.Add("42")
	f.Add("1 + 2 * 3")
	f.Add("-(1 + 2)")
	f.Add("--5")
	f.Add("(((1)))")
	f.Add("let x = 1; x")
	f.Add("fn add a b = a + b; add(1, 2)")
	f.Add("fn f = f(); f()")
	f.Add("f(1, 2,)")
	f.Add("letter + fnord")
	f.Add("let x = 1; let x = x + 1; x")
	f.Add("1 +")
	f.Add("(1 + 2")
	f.Add("let let = 1; 2")
	f.Add(strings.Repeat("9", 400))

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Parser should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", input, r)
			}
		}()

		expr, err := ParseString(t.Context(), input)
		if err != nil {
			// Errors must carry at least one anchored syntax error with a
			// span inside the input.
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error is %T, want *ParseError: %v", err, err)

				return
			}

			if len(perr.Errors) == 0 {
				t.Error("ParseError carries no syntax errors")

				return
			}

			for _, serr := range perr.Errors {
				if serr.Span.Start < 0 || serr.Span.End > len(input) ||
					serr.Span.Start > serr.Span.End {
					t.Errorf("span [%d,%d) out of bounds for input length %d",
						serr.Span.Start, serr.Span.End, len(input))
				}
			}

			return
		}

		// Successful parses must render to a form that re-parses to an
		// identical tree. Literals that overflow float64 saturate to +Inf,
		// which has no source form, so they are exempt.
		rendered := FormatExpr(expr)
		if strings.Contains(rendered, "+Inf") {
			return
		}

		reparsed, err := ParseString(t.Context(), rendered)
		if err != nil {
			t.Errorf("re-parse of rendered %q failed: %v", rendered, err)

			return
		}

		if !reflect.DeepEqual(expr, reparsed) {
			t.Errorf("round trip changed tree for input %q (rendered %q)",
				input, rendered)
		}
	})
}

package repl

import (
	"strconv"
	"strings"

	"github.com/novarc-lang/novarc/lang"
)

// renderParseError renders every syntax error in a parse failure with the
// offending source line and a caret marker under the error span, styled for
// the terminal.
func renderParseError(perr *lang.ParseError) string {
	if len(perr.Errors) == 0 {
		return errorStyle.Render("parse error")
	}

	lines := strings.Split(perr.Source, "\n")

	var b strings.Builder

	for i, serr := range perr.Errors {
		if i > 0 {
			b.WriteString("\n")
		}

		line, col := perr.Position(serr.Span.Start)

		b.WriteString(errorStyle.Render("error: " + serr.Msg))

		if line < 1 || line > len(lines) {
			continue
		}

		text := lines[line-1]
		gutter := strconv.Itoa(line) + " | "

		b.WriteString("\n  ")
		b.WriteString(hintStyle.Render(gutter))
		b.WriteString(text)
		b.WriteString("\n  ")

		width := serr.Span.End - serr.Span.Start
		if width < 1 || col-1+width > len(text)+1 {
			width = 1
		}

		b.WriteString(strings.Repeat(" ", len(gutter)+col-1))
		b.WriteString(errorStyle.Render(strings.Repeat("^", width)))
	}

	return b.String()
}

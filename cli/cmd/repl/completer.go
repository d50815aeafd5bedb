package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// keywords are the declaration keywords offered as completions.
var keywords = []string{"let", "fn"} //nolint:gochecknoglobals

// ctrlCommands are the available colon-prefixed commands.
var ctrlCommands = []string{":help", ":tree", ":clear", ":quit"} //nolint:gochecknoglobals

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes: whitespace and the language's operator and punctuation
// characters.
func isWordBoundary(r rune) bool {
	switch r {
	case '+', '-', '*', '/',
		'(', ')', ',', '=', ';':
		return true
	}

	return unicode.IsSpace(r)
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace and operator
// characters. Returns an empty word when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// boundNames scans the input for names introduced by let and fn declarations.
// The scan is purely lexical so partially typed input still yields the names
// declared earlier on the line.
func boundNames(input string) (vars, fns []string) {
	fields := strings.FieldsFunc(input, isWordBoundary)

	for i := 0; i+1 < len(fields); i++ {
		switch fields[i] {
		case "let":
			vars = append(vars, fields[i+1])
		case "fn":
			fns = append(fns, fields[i+1])
		}
	}

	return vars, fns
}

// candidates returns the completion candidates for the given input: the
// declaration keywords plus every name bound by a let or fn earlier in the
// input.
func candidates(input string) []string {
	vars, fns := boundNames(input)

	names := make([]string, 0, len(keywords)+len(vars)+len(fns))
	names = append(names, keywords...)
	names = append(names, vars...)
	names = append(names, fns...)

	return names
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first), the candidate list, and
// the word boundaries. An empty word yields no matches so the hint line stays
// visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	cands []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	if strings.HasPrefix(input, ":") {
		// Colon commands complete against the command list as a whole.
		if input == ":" {
			matches = make(fuzzy.Matches, len(ctrlCommands))
			for i, c := range ctrlCommands {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, ctrlCommands, 0, len(input)
		}

		return fuzzy.Find(input, ctrlCommands), ctrlCommands, 0, len(input)
	}

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" {
		return nil, nil, wordStart, wordEnd
	}

	cands = candidates(input)
	if len(cands) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, cands), cands, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		// If this is the last candidate, no need to reserve ellipsis space.
		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}

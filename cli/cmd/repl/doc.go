// Package repl implements the interactive evaluator as a
// [github.com/charmbracelet/bubbletea] program: a single-line prompt with
// file-backed history, fuzzy completion over keywords and bound names, and
// colon-prefixed commands.
package repl

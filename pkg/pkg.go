//nolint:gochecknoglobals
package pkg

import (
	"strings"

	_ "embed"
)

// Version is the semantic version of the novarc module embedded at build
// time. It is printed in the REPL banner and by the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "novarc"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Interactive expression language evaluator"
)

// Banner returns the greeting printed when the REPL starts.
func Banner() string {
	return Title() + " " + strings.TrimSpace(Version) + " ready."
}

// Title returns the project name with its first letter capitalized for
// display in user-facing text.
func Title() string {
	if Name == "" {
		return Name
	}

	return strings.ToUpper(Name[:1]) + Name[1:]
}

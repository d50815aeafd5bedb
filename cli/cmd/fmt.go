package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/novarc-lang/novarc/lang"
)

// Fmt parses input and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native expression syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as a parse tree."`
}

// Native formats input as native expression syntax.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the native format command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "native"))
	}

	_, err = fmt.Println(lang.FormatExpr(expr))

	return err
}

// JSON parses input and outputs the tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json format command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "json"))
	}

	return lang.FormatJSON(ctx, os.Stdout, expr, j.Indent)
}

// YAML parses input and outputs the tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml format command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return lang.FormatYAML(ctx, os.Stdout, expr, y.Indent)
}

// Tree parses input and outputs an indented parse tree.
type Tree struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the tree format command.
func (t *Tree) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, t.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "tree"))
	}

	return lang.FormatTree(os.Stdout, expr)
}

// parseSource parses an expression from the named file or stdin.
func parseSource(ctx context.Context, source string) (lang.Expr, error) {
	r, c, err := openSource(source)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return lang.ParseReader(ctx, bufio.NewReader(r))
}

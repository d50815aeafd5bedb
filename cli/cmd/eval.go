package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/novarc-lang/novarc/lang"
)

// Eval evaluates a single expression and prints the result.
type Eval struct {
	Tree     bool `help:"Print the parse tree before evaluating" short:"t"`
	MaxDepth int  `help:"Maximum function call depth (0 disables the limit)" default:"1000"`

	Expr []string `arg:"" help:"Expression to evaluate, or '-' for stdin" name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var expr lang.Expr

	if len(e.Expr) == 1 && e.Expr[0] == stdinSource {
		expr, err = lang.ParseReader(ctx, bufio.NewReader(os.Stdin))
	} else {
		expr, err = lang.ParseString(ctx, joinArgs(e.Expr))
	}

	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "eval"))
	}

	if e.Tree {
		err = lang.FormatTree(os.Stdout, expr)
		if err != nil {
			return err
		}
	}

	result, err := lang.Evaluate(ctx, expr, lang.WithMaxDepth(e.MaxDepth))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "eval"))
	}

	// Print result in native format
	fmt.Println(lang.FormatResult(result))

	return nil
}

package cmd

import (
	"context"

	"github.com/novarc-lang/novarc/cli/cmd/repl"
	"github.com/novarc-lang/novarc/log"
)

// Repl starts the interactive evaluator.
type Repl struct {
	Dir      string `default:"${cachedir}" help:"Directory for session history" type:"path"`
	MaxDepth int    `default:"1000"        help:"Maximum function call depth (0 disables the limit)"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(ctx, r.Dir, r.MaxDepth, log.Default())
}

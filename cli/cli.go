package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/novarc-lang/novarc/cli/cmd"
	"github.com/novarc-lang/novarc/pkg"
)

// CLI is the top-level command-line interface for novarc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Eval cmd.Eval `cmd:"" help:"Evaluate an expression and print the result"`
	Fmt  cmd.Fmt  `cmd:"" help:"Parse an expression and print it in the chosen format"`

	Repl cmd.Repl `cmd:"" default:"withargs" help:"Start the interactive evaluator"`
}

// Run executes the novarc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version":           strings.TrimSpace(pkg.Version),
		cmd.CacheIdentifier: cacheDir(),
	}.
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig)+".json"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless a profiling mode was selected.
	defer cli.Pprof.start(ctx).Stop()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

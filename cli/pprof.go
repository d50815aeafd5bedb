package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/novarc-lang/novarc/log"
	"github.com/novarc-lang/novarc/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), "pprof"),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if a mode was selected with --pprof-mode.
func (f pprofConfig) start(ctx context.Context) interface{ Stop() } {
	if f.Mode != "" {
		log.DebugContext(ctx, "pprof start",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
	}

	return profile.Start(f.Mode, f.Dir)
}

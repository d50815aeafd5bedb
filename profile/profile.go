// Package profile provides optional runtime profiling via
// [github.com/pkg/profile]. Profiling is off unless a mode is selected with
// the --pprof-mode flag; Start and Stop are always safely callable.
package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the sorted list of supported profiling modes.
func Modes() []string {
	return slices.Sorted(maps.Keys(mode))
}

// Start begins profiling in the given mode, writing output beneath path.
// An empty or unrecognized mode returns a no-op stopper.
func Start(name, path string) interface{ Stop() } {
	fn, ok := mode[name]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn, profile.Quiet}
	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}

	return profile.Start(opts...)
}

type ignore struct{}

func (ignore) Stop() {}

// Package cli implements the novarc command-line interface using
// [github.com/alecthomas/kong]: flag and subcommand parsing, logger
// configuration, optional profiling, and config/cache directory resolution.
package cli

// Package cmd implements the novarc subcommands: one-shot expression
// evaluation, expression formatting, and the interactive evaluator.
package cmd

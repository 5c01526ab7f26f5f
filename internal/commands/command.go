// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or mutates tasks.
	// help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// st is nil if NeedsStore() returns false. It may still be loading;
	// commands call st.Load before reading it.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int
}

// fail prints err in the CLI error format and returns the user error code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// printOK acknowledges a successful mutation unless quiet.
func printOK(cfg *config.Config, out io.Writer) {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
}

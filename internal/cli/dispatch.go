package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskeasy/internal/commands"
	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
)

// StoreFactory creates the task store for a command run. The returned
// cleanup func, if non-nil, is called after the command finishes.
type StoreFactory func(ctx context.Context, cfg *config.Config) (st *store.Store, cleanup func(), err error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var storageKind string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&storageKind, "storage", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag).
	// Arguments after a "--" terminator are taken literally.
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && !terminated(args, fs.NArg()) {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := loadConfig(cmd, configDir, storageKind)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	var st *store.Store
	if cmd.NeedsStore() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no storage configured")
			return exitcode.ConfigError
		}
		var cleanup func()
		st, cleanup, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.ConfigError
		}
		if cleanup != nil {
			defer cleanup()
		}
	}

	return cmd.Run(ctx, cfg, st, positionalArgs, out, errOut)
}

// loadConfig reads configuration and applies the --storage override.
// Commands that never touch the store get defaults when the config is
// broken, so help and version keep working.
func loadConfig(cmd commands.Command, configDir, storageKind string) (*config.Config, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		if cmd.NeedsStore() {
			return nil, err
		}
		return config.New(configDir)
	}
	if storageKind != "" {
		cfg.Storage = storageKind
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// terminated reports whether flag parsing stopped at a "--" argument, i.e.
// the token just before the n remaining positional args is "--".
func terminated(args []string, n int) bool {
	i := len(args) - n - 1
	return i >= 0 && args[i] == "--"
}

// flagError rewrites flag package errors into the CLI's error vocabulary.
func flagError(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "unknown flag: " + flagName
	}

	return errStr
}

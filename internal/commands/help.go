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

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskeasy help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskeasy                                        List all tasks
  taskeasy list [common flags] [--status all|pending|completed]   (alias: ls)
  taskeasy add [common flags] <title...>          (alias: create)
  taskeasy toggle [common flags] <ref>            (alias: done)
  taskeasy edit [common flags] <ref> <title...>   (alias: rename)
  taskeasy rm [common flags] <ref>                (alias: delete)
  taskeasy export [common flags] [--format json|yaml]
  taskeasy tui [common flags]
  taskeasy help
  taskeasy version

Task references:
  N      the N-th pending task, as numbered by list
  cN     the N-th completed task

Common flags:
  --config <dir>       Override config directory
  --storage <kind>     Storage backend: file, sqlite or memory
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr
`

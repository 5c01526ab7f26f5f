package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
	"taskeasy/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "taskeasy add <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return fail(errOut, task.ErrTitleRequired)
	}

	st.Load(ctx)
	if _, err := st.Create(ctx, strings.Join(args, " ")); err != nil {
		return fail(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}

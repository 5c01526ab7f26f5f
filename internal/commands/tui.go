package commands

import (
	"context"
	"flag"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
	"taskeasy/internal/ui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd opens the interactive view. The store is loaded by the view so
// the first frame shows the loading state.
type TUICmd struct{}

func (c *TUICmd) Name() string      { return "tui" }
func (c *TUICmd) Aliases() []string { return nil }
func (c *TUICmd) Synopsis() string  { return "Browse and edit tasks interactively" }
func (c *TUICmd) Usage() string     { return "taskeasy tui" }
func (c *TUICmd) NeedsStore() bool  { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if err := ui.Run(ctx, st, out); err != nil {
		return fail(errOut, err)
	}
	return exitcode.Success
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/output"
	"taskeasy/internal/store"
	"taskeasy/internal/task"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd writes the whole collection to stdout in collection order.
type ExportCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Print all tasks as JSON or YAML" }
func (c *ExportCmd) Usage() string     { return "taskeasy export [--format json|yaml]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	var write func(io.Writer, []task.Task) error
	switch c.format {
	case "", "json":
		write = output.WriteJSON
	case "yaml", "yml":
		write = output.WriteYAML
	default:
		return fail(errOut, fmt.Errorf("invalid format: %s", c.format))
	}

	st.Load(ctx)
	if err := write(out, st.Tasks()); err != nil {
		return fail(errOut, err)
	}
	return exitcode.Success
}

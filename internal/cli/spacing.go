package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/spacing"
)

// spacingOpts holds the command-line flags for the spacing command.
type spacingOpts struct {
	kind  string // margin or padding; padding clamps negative sides to 0
	sides bool   // print one labeled line per side
}

func (c *CLI) spacingCommand() *cobra.Command {
	opts := spacingOpts{kind: "margin"}

	cmd := &cobra.Command{
		Use:   "spacing <shorthand>",
		Short: "Expand a margin or padding shorthand",
		Long: `Spacing expands a one to four value shorthand into the four-sided
"<top> <right> <bottom> <left>" form the spacing controller dispatches.
Separate arguments are joined, so quoting is optional.`,
		Example: `  snapline spacing "10px 20px"
  snapline spacing 1 2 3 --sides
  snapline spacing --kind padding -- -4px 8px`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSpacing(cmd.OutOrStdout(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", opts.kind, "spacing kind: margin or padding")
	cmd.Flags().BoolVar(&opts.sides, "sides", false, "print each side on its own line")

	return cmd
}

func (c *CLI) runSpacing(w io.Writer, shorthand string, opts spacingOpts) error {
	kind, err := spacing.ParseKind(opts.kind)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "--kind")
	}
	box, err := spacing.Parse(shorthand)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSpacing, err, "parse %s", kind)
	}
	for i, v := range box {
		box[i] = kind.Clamp(v)
	}
	c.Logger.Debug("spacing", "kind", kind, "input", shorthand, "box", box.String())

	if !opts.sides {
		_, err := fmt.Fprintln(w, box.String())
		return err
	}
	for _, side := range []spacing.Side{spacing.Top, spacing.Right, spacing.Bottom, spacing.Left} {
		if _, err := fmt.Fprintln(w, formatKeyValue(side.String(), geom.FormatPx(box.Get(side)))); err != nil {
			return err
		}
	}
	return nil
}

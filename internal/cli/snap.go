package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/grid"
)

// snapOpts holds the command-line flags for the snap command.
type snapOpts struct {
	cols int // when set, the unit argument is a parent width split into cols
}

func (c *CLI) snapCommand() *cobra.Command {
	var opts snapOpts

	cmd := &cobra.Command{
		Use:   "snap <value> <unit>",
		Short: "Quantize a value onto a grid unit",
		Long: `Snap rounds value to the nearest multiple of unit, rounding exact halves up.
With --cols the second argument is the parent width and the unit is
width / cols, the way the gesture controllers derive it.`,
		Example: `  snapline snap 130 100
  snapline snap 130 400 --cols 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", 0, "grid columns (unit argument becomes the parent width)")

	return cmd
}

func (c *CLI) runSnap(w io.Writer, valueArg, unitArg string, opts snapOpts) error {
	value, err := parseNumber("value", valueArg)
	if err != nil {
		return err
	}
	unit, err := parseNumber("unit", unitArg)
	if err != nil {
		return err
	}
	if opts.cols != 0 {
		if err := errors.ValidateGridCols(opts.cols); err != nil {
			return err
		}
		unit = grid.Unit(unit, opts.cols)
	}

	snapped := grid.Snap(value, unit)
	c.Logger.Debug("snap", "value", value, "unit", unit, "result", snapped)
	_, err = fmt.Fprintln(w, geom.FormatNumber(snapped))
	return err
}

// parseNumber accepts plain numbers and pixel values ("12", "12.5px").
func parseNumber(name, s string) (float64, error) {
	if v, ok := geom.ParsePx(s); ok {
		return v, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, s)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox"
)

var labelParse []string

var labelCmd = &cobra.Command{
	Use:   "label [index...]",
	Short: "Convert between nail indices and labels",
	Long: `Convert 0-based nail table indices to (F, R, C) labels, or labels back
to indices with --parse.

Examples:
  nailbox label 0 99 123
  nailbox label --parse "(F2,R3,C4)"`,
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
	labelCmd.Flags().StringArrayVar(&labelParse, "parse", nil, "Label to convert to an index (repeatable)")
}

func runLabel(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(labelParse) == 0 {
		return fmt.Errorf("specify indices or --parse")
	}

	box, _, err := openBox(cmd)
	if err != nil {
		return err
	}
	n := box.N()

	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not an index", nailbox.ErrInvalidInput, arg)
		}
		nail, err := box.Nail(i)
		if err != nil {
			return err
		}
		p := nail.Position
		fmt.Printf("%d\t%s\t%s\t(%.3f, %.3f, %.3f)\n", i, nail.Address.Label(), nail.Address.Face, p.X, p.Y, p.Z)
	}

	for _, label := range labelParse {
		a, err := nailbox.ParseAddress(label)
		if err != nil {
			return err
		}
		if !a.Valid(n) {
			return fmt.Errorf("%w: %s on a box with %d nails per side", nailbox.ErrUnresolvedNail, a.Label(), n)
		}
		fmt.Printf("%s\t%d\t%s\n", a.Label(), nailbox.AddressToIndex(n, a), a.Face)
	}

	return nil
}

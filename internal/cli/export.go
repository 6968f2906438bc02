package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox"
	"github.com/SeamusWaldron/nailbox/internal/export"
)

var (
	exportStep    int
	exportShowAll bool
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export <sequence-file>",
	Short: "Export the nails and thread lines as JSON",
	Long: `Export everything a renderer needs for one step of a sequence: every
nail position with its tag, and the thread lines to draw.

Examples:
  nailbox export pattern.txt --step 40
  nailbox export pattern.txt --step 40 --show-all -o step40.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntVar(&exportStep, "step", 0, "Step to export (0 = no thread shown)")
	exportCmd.Flags().BoolVar(&exportShowAll, "show-all", false, "Include every step up to --step")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	box, cfg, err := openBox(cmd)
	if err != nil {
		return err
	}

	seq, err := readSequence(args[0], box)
	if err != nil {
		return err
	}

	player := nailbox.NewPlayer(box)
	player.Load(seq)
	player.SetShowAll(exportShowAll || (cfg.ShowAll && !cmd.Flags().Changed("show-all")))
	if exportStep != 0 {
		if err := player.JumpTo(exportStep); err != nil {
			return err
		}
	}

	snap, err := export.Build(player)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return export.Write(os.Stdout, snap)
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, snap); err != nil {
		return err
	}
	fmt.Printf("Exported step %d/%d to %s\n", snap.Step, snap.TotalSteps, exportOutput)
	return nil
}

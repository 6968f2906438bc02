// Package cli implements the command-line interface for nailbox.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox"
	"github.com/SeamusWaldron/nailbox/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath   string
	verbose      bool
	nailsPerSide int
	cubeSize     float64
	spacing      float64
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nailbox",
	Short: "String art nail box player",
	Long: `nailbox - step through string art thread sequences on a five-sided nail box.

The box has an n x n grid of nails on its top, right, bottom, left and back
faces. Nails are written (F<face>, R<row>, C<col>), numbered from 1, with
faces in that order. A sequence file lists nails one after another and every
consecutive pair is one thread pull.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nailbox/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&nailsPerSide, "nails", "n", nailbox.DefaultNailsPerSide, "Nails per row and column of each face")
	rootCmd.PersistentFlags().Float64Var(&cubeSize, "size", nailbox.DefaultCubeSize, "Cube edge length")
	rootCmd.PersistentFlags().Float64Var(&spacing, "spacing", nailbox.DefaultSpacing, "Distance between neighbouring nails")
}

// loadConfig reads the config file and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("nails") {
		cfg.NailsPerSide = nailsPerSide
	}
	if flags.Changed("size") {
		cfg.CubeSize = cubeSize
	}
	if flags.Changed("spacing") {
		cfg.Spacing = spacing
	}
	return cfg, nil
}

// openBox builds the box described by the config file and flags.
func openBox(cmd *cobra.Command) (*nailbox.Box, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	box, err := cfg.NewBox()
	if err != nil {
		return nil, cfg, err
	}
	debugf("box: %d nails per side, size %.2f, spacing %.2f, %d nails\n",
		box.N(), box.CubeSize(), box.Spacing(), box.Len())
	return box, cfg, nil
}

// readSequence parses and validates the sequence file at path.
func readSequence(path string, box *nailbox.Box) (*nailbox.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sequence: %w", err)
	}
	defer f.Close()

	seq, err := nailbox.ParseSequence(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := seq.Validate(box); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	debugf("sequence %s: %d steps\n", path, seq.Len())
	return seq, nil
}

// logDir returns the session log directory from the config or the default.
func logDir(cfg config.Config) (string, error) {
	if cfg.LogDir != "" {
		return cfg.LogDir, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

func debugf(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

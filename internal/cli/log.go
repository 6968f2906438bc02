package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox/internal/session"
)

var logCmd = &cobra.Command{
	Use:   "log [log-file]",
	Short: "List or show recorded play sessions",
	Long: `Show a session log written by "nailbox play --log".

If no log file is specified, lists available log files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, err := logDir(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return listLogs(dir)
	}

	path := args[0]
	// If not an absolute path, look in log directory
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	log, err := session.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}

	fmt.Printf("Session: %s\n", log.SessionID)
	fmt.Printf("Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	if log.SequenceFile != "" {
		fmt.Printf("Sequence: %s\n", log.SequenceFile)
	}
	fmt.Printf("Events: %d\n", len(log.Events))
	fmt.Println()

	for _, e := range log.Events {
		line := fmt.Sprintf("%8.1fs  %-8s %-10s %3d/%-3d %s",
			float64(e.ElapsedMs)/1000, e.Kind, e.Input, e.Step, e.Total, e.Instruction)
		if e.Error != "" {
			line += "  " + errorStyle.Render(e.Error)
		}
		fmt.Println(line)
	}
	return nil
}

func listLogs(dir string) error {
	logs, err := session.List(dir)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No log files found. Record a session with: nailbox play --log <file>")
		return nil
	}

	fmt.Println("Available log files:")
	fmt.Println()
	for _, l := range logs {
		fmt.Printf("  %s\n", l)
	}
	fmt.Println()
	fmt.Println("Usage: nailbox log <filename>")
	return nil
}

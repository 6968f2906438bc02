package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check <sequence-file>",
	Short: "Validate a sequence file and print its instructions",
	Long: `Parse a sequence file, check every nail exists on the configured box,
and print the numbered instructions.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only print the summary")
}

func runCheck(cmd *cobra.Command, args []string) error {
	box, _, err := openBox(cmd)
	if err != nil {
		return err
	}

	seq, err := readSequence(args[0], box)
	if err != nil {
		return err
	}

	if !checkQuiet {
		width := len(fmt.Sprint(seq.Len()))
		for i, s := range seq.Segments() {
			fmt.Printf("%*d. %s\n", width, i+1, s.Instruction())
		}
		fmt.Println()
	}

	fmt.Printf("%s: %d steps, %d nails per side\n", args[0], seq.Len(), box.N())
	return nil
}

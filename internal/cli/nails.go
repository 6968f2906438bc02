package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox"
)

var (
	nailsFormat string
	nailsFace   string
)

var nailsCmd = &cobra.Command{
	Use:   "nails",
	Short: "List every nail with its label and position",
	Long: `List the nails of the box in table order: face by face (top, right,
bottom, left, back), then row by row, then column by column.

Examples:
  nailbox nails
  nailbox nails --face back
  nailbox nails --format json -n 12`,
	RunE: runNails,
}

func init() {
	rootCmd.AddCommand(nailsCmd)
	nailsCmd.Flags().StringVar(&nailsFormat, "format", "txt", "Output format (txt, json)")
	nailsCmd.Flags().StringVar(&nailsFace, "face", "", "Only list nails of this face")
}

func runNails(cmd *cobra.Command, args []string) error {
	box, _, err := openBox(cmd)
	if err != nil {
		return err
	}

	nails := box.Nails()
	indices := make([]int, len(nails))
	for i := range indices {
		indices[i] = i
	}

	if nailsFace != "" {
		face, err := nailbox.ParseFace(nailsFace)
		if err != nil {
			return err
		}
		perFace := box.N() * box.N()
		start := int(face) * perFace
		nails = nails[start : start+perFace]
		indices = indices[start : start+perFace]
	}

	switch strings.ToLower(nailsFormat) {
	case "txt":
		for i, n := range nails {
			p := n.Position
			fmt.Printf("%4d  %-16s %-7s %8.3f %8.3f %8.3f  %s\n",
				indices[i], n.Address.Label(), n.Address.Face, p.X, p.Y, p.Z, n.Tag)
		}
		return nil

	case "json":
		type NailJSON struct {
			Index    int        `json:"index"`
			Label    string     `json:"label"`
			Face     string     `json:"face"`
			Position [3]float64 `json:"position"`
			Tag      string     `json:"tag"`
		}

		out := make([]NailJSON, len(nails))
		for i, n := range nails {
			out[i] = NailJSON{
				Index:    indices[i],
				Label:    n.Address.Label(),
				Face:     n.Address.Face.String(),
				Position: [3]float64{n.Position.X, n.Position.Y, n.Position.Z},
				Tag:      n.Tag.String(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", nailsFormat)
	}
}

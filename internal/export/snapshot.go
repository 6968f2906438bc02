// Package export serializes what a renderer needs to draw the box: the
// static nail cloud and the thread lines for one player position.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/SeamusWaldron/nailbox"
)

// Snapshot is the JSON document written by the export command.
type Snapshot struct {
	Box         BoxInfo `json:"box"`
	Nails       []Nail  `json:"nails"`
	Lines       []Line  `json:"lines"`
	Step        int     `json:"step"`
	TotalSteps  int     `json:"total_steps"`
	Instruction string  `json:"instruction"`
	ShowAll     bool    `json:"show_all"`
}

// BoxInfo describes the box dimensions and the extent of the nails.
type BoxInfo struct {
	NailsPerSide int        `json:"nails_per_side"`
	CubeSize     float64    `json:"cube_size"`
	Spacing      float64    `json:"spacing"`
	FaceOrder    []string   `json:"face_order"`
	BoundsMin    [3]float64 `json:"bounds_min"`
	BoundsMax    [3]float64 `json:"bounds_max"`
}

// Nail is one point of the nail cloud.
type Nail struct {
	Index    int        `json:"index"`
	Label    string     `json:"label"`
	Face     string     `json:"face"`
	Position [3]float64 `json:"position"`
	Tag      string     `json:"tag"`
}

// Line is one thread segment.
type Line struct {
	Step  int        `json:"step"`
	Start [3]float64 `json:"start"`
	End   [3]float64 `json:"end"`
	Style string     `json:"style"`
}

func vec(v v3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Build constructs a snapshot of player's box at its current position.
func Build(player *nailbox.Player) (*Snapshot, error) {
	box := player.Box()
	status := player.Status()

	lines, err := player.RenderView(status.ShowAll)
	if err != nil {
		return nil, fmt.Errorf("resolving lines: %w", err)
	}

	min, max := box.Bounds()
	faceOrder := make([]string, len(nailbox.Faces))
	for i, f := range nailbox.Faces {
		faceOrder[i] = f.String()
	}

	snap := &Snapshot{
		Box: BoxInfo{
			NailsPerSide: box.N(),
			CubeSize:     box.CubeSize(),
			Spacing:      box.Spacing(),
			FaceOrder:    faceOrder,
			BoundsMin:    vec(min),
			BoundsMax:    vec(max),
		},
		Nails:       make([]Nail, box.Len()),
		Lines:       make([]Line, len(lines)),
		Step:        status.Step,
		TotalSteps:  status.Total,
		Instruction: status.Instruction,
		ShowAll:     status.ShowAll,
	}

	scene := nailbox.NewScene(box)
	for i, pos := range scene.Positions {
		a := nailbox.IndexToAddress(box.N(), i)
		snap.Nails[i] = Nail{
			Index:    i,
			Label:    a.Label(),
			Face:     a.Face.String(),
			Position: vec(pos),
			Tag:      scene.Tags[i].String(),
		}
	}
	for i, l := range lines {
		snap.Lines[i] = Line{
			Step:  l.Step,
			Start: vec(l.Start),
			End:   vec(l.End),
			Style: l.Style.String(),
		}
	}

	return snap, nil
}

// Write encodes snap as indented JSON.
func Write(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

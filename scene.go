package nailbox

import v3 "github.com/deadsy/sdfx/vec/v3"

// Style distinguishes the current segment from earlier ones.
type Style int

const (
	StyleNormal      Style = 0
	StyleHighlighted Style = 1
)

func (s Style) String() string {
	if s == StyleHighlighted {
		return "highlighted"
	}
	return "normal"
}

// Line is one segment resolved to positions, ready to draw.
type Line struct {
	Step  int // 1-based step number
	Start v3.Vec
	End   v3.Vec
	Style Style
}

// Scene is the static point cloud handed to a renderer once at startup.
type Scene struct {
	Positions []v3.Vec
	Tags      []Tag
}

// NewScene collects the positions and tags of every nail on box.
func NewScene(box *Box) Scene {
	s := Scene{
		Positions: make([]v3.Vec, box.Len()),
		Tags:      make([]Tag, box.Len()),
	}
	for i, nail := range box.nails {
		s.Positions[i] = nail.Position
		s.Tags[i] = nail.Tag
	}
	return s
}

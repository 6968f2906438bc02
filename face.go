package nailbox

import (
	"fmt"
	"math"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Face identifies one of the five populated sides of the box.
// The numeric value is the face's position in the nail table, so the
// order below is fixed: every label and sequence file depends on it.
type Face int

const (
	FaceTop    Face = 0
	FaceRight  Face = 1
	FaceBottom Face = 2
	FaceLeft   Face = 3
	FaceBack   Face = 4
)

// NumFaces is the number of faces that carry nails. The front stays open.
const NumFaces = 5

// Faces lists every face in table order.
var Faces = [NumFaces]Face{FaceTop, FaceRight, FaceBottom, FaceLeft, FaceBack}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceBack:
		return "back"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the five nail faces.
func (f Face) Valid() bool {
	return f >= FaceTop && f <= FaceBack
}

// ParseFace converts a face name ("top", "Left", ...) to a Face.
func ParseFace(s string) (Face, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Faces {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown face %q", ErrInvalidInput, s)
}

// placement describes how a flat face grid is moved onto the cube:
// rotate about X, then about Y, then translate to the face center.
type placement struct {
	rotX, rotY float64
	center     v3.Vec
}

// placementOf returns the placement of face f on a cube of the given size.
func placementOf(f Face, cubeSize float64) placement {
	o := cubeSize / 2
	r := math.Pi / 2
	switch f {
	case FaceTop:
		return placement{rotX: r, center: v3.Vec{Y: o}}
	case FaceRight:
		return placement{rotY: r, center: v3.Vec{X: o}}
	case FaceBottom:
		return placement{rotX: r, center: v3.Vec{Y: -o}}
	case FaceLeft:
		return placement{rotY: r, center: v3.Vec{X: -o}}
	default: // FaceBack
		return placement{center: v3.Vec{Z: -o}}
	}
}

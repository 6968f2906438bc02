package nailbox

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Tag is a presentation attribute for a nail. It has no effect on
// addressing.
type Tag int

const (
	TagInterior   Tag = 0
	TagRowEdge    Tag = 1 // row 0, not the corner
	TagColumnEdge Tag = 2 // column 0, not the corner
	TagCorner     Tag = 3 // row 0, column 0
)

func (t Tag) String() string {
	switch t {
	case TagInterior:
		return "interior"
	case TagRowEdge:
		return "row-edge"
	case TagColumnEdge:
		return "column-edge"
	case TagCorner:
		return "corner"
	default:
		return "?"
	}
}

// GenerateFace returns the nx*ny nail positions of one face.
//
// The grid is laid out in the XY plane centered on the origin, row by row
// (y outer, x inner), so the i-th point is row i/nx, column i%nx. Each
// point is then rotated rotX radians about the X axis, rotY radians about
// the Y axis, and translated by center.
func GenerateFace(nx, ny int, dx, dy, rotX, rotY float64, center v3.Vec) []v3.Vec {
	if nx <= 0 || ny <= 0 {
		return nil
	}

	// Applied right to left: X rotation, Y rotation, translation.
	m := sdf.Translate3d(center).Mul(sdf.RotateY(rotY)).Mul(sdf.RotateX(rotX))

	startX := -float64(nx-1) * dx / 2
	startY := -float64(ny-1) * dy / 2

	points := make([]v3.Vec, 0, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			local := v3.Vec{X: startX + float64(x)*dx, Y: startY + float64(y)*dy}
			points = append(points, m.MulPosition(local))
		}
	}
	return points
}

// FaceTags returns the tag of every nail on an n x n face, in the same
// order as GenerateFace.
func FaceTags(n int) []Tag {
	if n <= 0 {
		return nil
	}
	tags := make([]Tag, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			tags[row*n+col] = tagAt(row, col)
		}
	}
	return tags
}

func tagAt(row, col int) Tag {
	switch {
	case row == 0 && col == 0:
		return TagCorner
	case row == 0:
		return TagRowEdge
	case col == 0:
		return TagColumnEdge
	default:
		return TagInterior
	}
}

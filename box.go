package nailbox

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Nail is a single peg on the box.
type Nail struct {
	Address  Address
	Position v3.Vec
	Tag      Tag
}

// Box is the immutable nail table: every nail of the five faces, face by
// face in Faces order, then row by row, then column by column.
// It is safe to share between goroutines since nothing mutates it after
// NewBox returns.
type Box struct {
	n        int
	cubeSize float64
	spacing  float64
	nails    []Nail
}

// NewBox builds the nail table.
//
// Example:
//
//	box, err := nailbox.NewBox(nailbox.WithNailsPerSide(12))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(box.Len()) // 720
func NewBox(opts ...Option) (*Box, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := cfg.nailsPerSide
	tags := FaceTags(n)

	nails := make([]Nail, 0, NumFaces*n*n)
	for _, face := range Faces {
		p := placementOf(face, cfg.cubeSize)
		points := GenerateFace(n, n, cfg.spacing, cfg.spacing, p.rotX, p.rotY, p.center)
		for i, pos := range points {
			nails = append(nails, Nail{
				Address:  Address{Face: face, Row: i / n, Col: i % n},
				Position: pos,
				Tag:      tags[i],
			})
		}
	}

	return &Box{
		n:        n,
		cubeSize: cfg.cubeSize,
		spacing:  cfg.spacing,
		nails:    nails,
	}, nil
}

// N returns the number of nails per row and column of each face.
func (b *Box) N() int { return b.n }

// CubeSize returns the cube edge length.
func (b *Box) CubeSize() float64 { return b.cubeSize }

// Spacing returns the distance between neighbouring nails.
func (b *Box) Spacing() float64 { return b.spacing }

// Len returns the total number of nails, 5*n*n.
func (b *Box) Len() int { return len(b.nails) }

// Nail returns the nail at linear index i.
func (b *Box) Nail(i int) (Nail, error) {
	if i < 0 || i >= len(b.nails) {
		return Nail{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrUnresolvedNail, i, len(b.nails))
	}
	return b.nails[i], nil
}

// Nails returns a copy of the nail table.
func (b *Box) Nails() []Nail {
	out := make([]Nail, len(b.nails))
	copy(out, b.nails)
	return out
}

// Position returns the 3D position of the nail at a.
func (b *Box) Position(a Address) (v3.Vec, error) {
	if !a.Valid(b.n) {
		return v3.Vec{}, fmt.Errorf("%w: %s on a box with %d nails per side", ErrUnresolvedNail, a.Label(), b.n)
	}
	return b.nails[AddressToIndex(b.n, a)].Position, nil
}

// Bounds returns the axis-aligned bounding box of all nails.
func (b *Box) Bounds() (min, max v3.Vec) {
	min = v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, nail := range b.nails {
		p := nail.Position
		min = v3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = v3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return min, max
}

package nailbox

import (
	"fmt"
	"math"
)

// Defaults match the physical box the sequences were written for (cm).
const (
	DefaultNailsPerSide = 10
	DefaultCubeSize     = 66.0
	DefaultSpacing      = 6.29
)

// Option configures a Box.
type Option func(*config)

type config struct {
	nailsPerSide int
	cubeSize     float64
	spacing      float64
}

func defaultConfig() *config {
	return &config{
		nailsPerSide: DefaultNailsPerSide,
		cubeSize:     DefaultCubeSize,
		spacing:      DefaultSpacing,
	}
}

// WithNailsPerSide sets n, the number of nails per row and per column of
// every face. A box holds 5*n*n nails.
func WithNailsPerSide(n int) Option {
	return func(c *config) {
		c.nailsPerSide = n
	}
}

// WithCubeSize sets the edge length of the cube. Each face is centered
// half this distance from the origin.
func WithCubeSize(size float64) Option {
	return func(c *config) {
		c.cubeSize = size
	}
}

// WithSpacing sets the distance between neighbouring nails on a face.
func WithSpacing(spacing float64) Option {
	return func(c *config) {
		c.spacing = spacing
	}
}

func (c *config) validate() error {
	if c.nailsPerSide <= 0 {
		return fmt.Errorf("%w: nails per side must be positive, got %d", ErrInvalidConfig, c.nailsPerSide)
	}
	if !finitePositive(c.cubeSize) {
		return fmt.Errorf("%w: cube size must be positive, got %v", ErrInvalidConfig, c.cubeSize)
	}
	if !finitePositive(c.spacing) {
		return fmt.Errorf("%w: spacing must be positive, got %v", ErrInvalidConfig, c.spacing)
	}
	if span := float64(c.nailsPerSide-1) * c.spacing; span > c.cubeSize {
		return fmt.Errorf("%w: grid span %.2f exceeds cube size %.2f", ErrInvalidConfig, span, c.cubeSize)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

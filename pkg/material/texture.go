package material

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// Texture provides a color for a surface point and its texture coordinates
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a constant-color texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a texture with a constant color
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the constant color
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker from two component textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker alternating two solid colors
func NewCheckerColors(c1, c2 core.Vec3) *CheckerTexture {
	return &CheckerTexture{Even: NewSolidColor(c1), Odd: NewSolidColor(c2)}
}

// Value selects a component texture based on the sign of a sine product
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

package core

import "math"

// PDF is a sampleable probability density over directions from a fixed
// origin. Value must be non-negative everywhere and match the distribution
// Generate draws from, which keeps the Monte Carlo estimator unbiased.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF is the cosine-weighted hemisphere distribution about a normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted PDF about the given normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, zero below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction about the normal
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.Local(RandomCosineDirection(sampler.Get2D()))
}

// SpherePDF is the uniform distribution over the full sphere of directions,
// the phase function of an isotropic medium
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value is constant: 1/(4π) for every direction
func (p *SpherePDF) Value(direction Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (p *SpherePDF) Generate(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF samples directions toward a shape's solid angle, used for
// next-event estimation toward lights
type HittablePDF struct {
	target DirectionSampler
	origin Vec3
}

// NewHittablePDF creates a PDF sampling the target shape from origin
func NewHittablePDF(target DirectionSampler, origin Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value returns the solid-angle density of the direction toward the target
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate draws a direction toward the target shape
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.target.RandomDirection(p.origin, sampler)
}

// MixturePDF is a 50/50 mixture of two distributions
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates an equal-weight mixture of two PDFs
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{a: a, b: b}
}

// Value averages the two component densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}

// Generate draws from either component with equal probability
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.a.Generate(sampler)
	}
	return p.b.Generate(sampler)
}

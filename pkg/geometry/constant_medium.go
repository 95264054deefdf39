package geometry

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// ConstantMedium models a homogeneous participating medium (fog, smoke)
// filling a boundary shape. Its intersection test is stochastic: a
// free-flight distance is drawn from an exponential distribution and tested
// against the ray's traversal interval inside the boundary.
type ConstantMedium struct {
	boundary      core.Hittable
	phaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density inside the
// boundary shape. The phase function is normally an isotropic material.
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		phaseFunction: phaseFunction,
		negInvDensity: -1 / density,
	}
}

// Hit finds the ray's entry/exit interval inside the boundary, samples a
// free-flight distance, and reports a hit if the sample lands inside
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Entry point, searching the whole ray so origins inside the boundary work
	hit1, isHit := m.boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	// Exit point past the entry
	hit2, isHit := m.boundary.Hit(ray, hit1.T+0.0001, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary, scattering is isotropic
		FrontFace: true,                  // arbitrary
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox delegates to the boundary shape
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.boundary.BoundingBox(time0, time1)
}

package geometry

import "github.com/mcray/go-raytracer/pkg/core"

// FlipFace inverts the front-face flag of a wrapped primitive, making a
// one-sided emitter face the other way
type FlipFace struct {
	child core.Hittable
}

// NewFlipFace wraps the given primitive with a face flip
func NewFlipFace(child core.Hittable) *FlipFace {
	return &FlipFace{child: child}
}

// Hit delegates and inverts the front-face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, isHit := f.child.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the child
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.child.BoundingBox(time0, time1)
}

package geometry

import "github.com/mcray/go-raytracer/pkg/core"

// Translate shifts a wrapped primitive by a fixed offset
type Translate struct {
	child  core.Hittable
	offset core.Vec3
}

// NewTranslate wraps the given primitive with a translation
func NewTranslate(child core.Hittable, offset core.Vec3) *Translate {
	return &Translate{child: child, offset: offset}
}

// Hit shifts the ray into the child's frame, delegates, and shifts the hit
// point back into the outer frame
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	hit, isHit := t.child.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox shifts the child's box by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	childBox, bounded := t.child.BoundingBox(time0, time1)
	if !bounded {
		return core.AABB{}, false
	}

	return core.NewAABB(
		childBox.Min.Add(t.offset),
		childBox.Max.Add(t.offset),
	), true
}

package geometry

import "github.com/mcray/go-raytracer/pkg/core"

// HittableList is a linear aggregate of primitives
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit scans all children and keeps the closest hit
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all children's boxes. It fails if the
// list is empty or any child is unbounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		childBox, bounded := object.BoundingBox(time0, time1)
		if !bounded {
			return core.AABB{}, false
		}
		if first {
			box = childBox
			first = false
		} else {
			box = core.Surrounding(box, childBox)
		}
	}

	return box, true
}

// PDFValue averages the solid-angle densities of the sampleable children,
// matching the uniform child selection in RandomDirection
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if sampler, ok := object.(core.DirectionSampler); ok {
			sum += weight * sampler.PDFValue(origin, direction)
		}
	}

	return sum
}

// RandomDirection delegates to a uniformly selected child
func (l *HittableList) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}

	if target, ok := l.Objects[index].(core.DirectionSampler); ok {
		return target.RandomDirection(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}

package geometry

import "github.com/mcray/go-raytracer/pkg/core"

// Box is an axis-aligned box aggregating six rectangle faces
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit delegates to the six faces, keeping the closest
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

package geometry

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// rectPadding thickens a rectangle's bounding box along its normal axis so
// it has nonzero volume for BVH purposes
const rectPadding = 0.0001

// XYRect is an axis-aligned rectangle in a plane of constant Z
type XYRect struct {
	X0, X1, Y0, Y1 float64
	K              float64 // Z coordinate of the plane
	Material       core.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z=k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (y - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(0, 0, 1))

	return hitRecord, true
}

// BoundingBox returns the rectangle padded along its normal axis
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPadding),
		core.NewVec3(r.X1, r.Y1, r.K+rectPadding),
	), true
}

// XZRect is an axis-aligned rectangle in a plane of constant Y, the usual
// orientation for ceiling lights
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64 // Y coordinate of the plane
	Material       core.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y=k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(0, 1, 0))

	return hitRecord, true
}

// BoundingBox returns the rectangle padded along its normal axis
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPadding, r.Z0),
		core.NewVec3(r.X1, r.K+rectPadding, r.Z1),
	), true
}

// PDFValue returns the solid-angle density of sampling the given direction
// from origin toward the rectangle
func (r *XZRect) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, isHit := r.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		return 0
	}

	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	// Convert the uniform area density to a solid-angle density
	return distanceSquared / (cosine * area)
}

// RandomDirection draws a direction from origin toward a uniformly sampled
// point on the rectangle
func (r *XZRect) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := core.NewVec3(
		r.X0+sample.X*(r.X1-r.X0),
		r.K,
		r.Z0+sample.Y*(r.Z1-r.Z0),
	)
	return point.Subtract(origin)
}

// YZRect is an axis-aligned rectangle in a plane of constant X
type YZRect struct {
	Y0, Y1, Z0, Z1 float64
	K              float64 // X coordinate of the plane
	Material       core.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x=k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (y - r.Y0) / (r.Y1 - r.Y0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(1, 0, 0))

	return hitRecord, true
}

// BoundingBox returns the rectangle padded along its normal axis
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPadding, r.Y1, r.Z1),
	), true
}

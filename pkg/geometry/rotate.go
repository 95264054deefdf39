package geometry

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// RotateY rotates a wrapped primitive about the Y axis
type RotateY struct {
	child    core.Hittable
	sinTheta float64
	cosTheta float64
	hasBox   bool
	bbox     core.AABB
}

// NewRotateY wraps the given primitive with a rotation of angle degrees
// about the Y axis. The world-space bounding box is precomputed from the
// eight transformed corners of the child's box.
func NewRotateY(child core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		child:    child,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, bounded := child.BoundingBox(0, 1)
	r.hasBox = bounded
	if !bounded {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.Max.X + float64(1-i)*childBox.Min.X
				y := float64(j)*childBox.Max.Y + float64(1-j)*childBox.Min.Y
				z := float64(k)*childBox.Max.Z + float64(1-k)*childBox.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	r.bbox = core.NewAABB(min, max)
	return r
}

// Hit rotates the ray into the child's local frame, delegates, and rotates
// the hit point and normal back into the outer frame
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)
	rotated := core.NewRayAt(origin, direction, ray.Time)

	hit, isHit := r.child.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = core.NewVec3(
		r.cosTheta*hit.Point.X+r.sinTheta*hit.Point.Z,
		hit.Point.Y,
		-r.sinTheta*hit.Point.X+r.cosTheta*hit.Point.Z,
	)
	hit.Normal = core.NewVec3(
		r.cosTheta*hit.Normal.X+r.sinTheta*hit.Normal.Z,
		hit.Normal.Y,
		-r.sinTheta*hit.Normal.X+r.cosTheta*hit.Normal.Z,
	)

	return hit, true
}

// BoundingBox returns the precomputed world-space box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}

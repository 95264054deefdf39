package geometry

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2·half_b·t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Take the smaller root in range, else the larger
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// PDFValue returns the solid-angle density of sampling the given direction
// from origin, uniform over the cone the sphere subtends
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	if _, isHit := s.Hit(ray, 0.001, math.Inf(1), nil); !isHit {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// RandomDirection draws a direction from origin toward the sphere, uniform
// over its subtended solid angle
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	uvw := core.NewONB(toCenter)
	local := core.RandomToSphere(s.Radius, toCenter.LengthSquared(), sampler.Get2D())
	return uvw.Local(local)
}

// sphereUV maps a point on the unit sphere to (u, v) texture coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}

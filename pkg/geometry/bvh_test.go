package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mcray/go-raytracer/pkg/core"
)

// unboundedShape is a hittable with no bounding box, like an infinite plane
type unboundedShape struct{}

func (u *unboundedShape) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return nil, false
}

func (u *unboundedShape) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func randomSpheres(count int, rng *rand.Rand) []core.Hittable {
	objects := make([]core.Hittable, count)
	for i := range objects {
		center := core.NewVec3(
			rng.Float64()*20-10,
			rng.Float64()*20-10,
			rng.Float64()*20-10,
		)
		objects[i] = NewSphere(center, 0.2+rng.Float64(), nil)
	}
	return objects
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	objects := randomSpheres(64, rng)

	bvh, err := NewBVH(objects, 0, 1)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed, got %v", err)
	}
	list := NewHittableList(objects...)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20)
		direction := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		bvhHit, bvhIsHit := bvh.Hit(ray, 0.001, math.Inf(1), nil)
		listHit, listIsHit := list.Hit(ray, 0.001, math.Inf(1), nil)

		if bvhIsHit != listIsHit {
			t.Fatalf("Ray %d: BVH hit=%t but linear scan hit=%t", i, bvhIsHit, listIsHit)
		}
		if bvhIsHit && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("Ray %d: BVH t=%f but linear scan t=%f", i, bvhHit.T, listHit.T)
		}
	}
}

func TestBVH_SinglePrimitive(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	bvh, err := NewBVH([]core.Hittable{sphere}, 0, 1)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed, got %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
}

func TestBVH_BoxContainsAllPrimitives(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	objects := randomSpheres(16, rng)

	bvh, err := NewBVH(objects, 0, 1)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed, got %v", err)
	}

	rootBox, bounded := bvh.BoundingBox(0, 1)
	if !bounded {
		t.Fatal("Expected root node to be bounded")
	}

	for i, object := range objects {
		box, _ := object.BoundingBox(0, 1)
		if box.Min.X < rootBox.Min.X || box.Min.Y < rootBox.Min.Y || box.Min.Z < rootBox.Min.Z ||
			box.Max.X > rootBox.Max.X || box.Max.Y > rootBox.Max.Y || box.Max.Z > rootBox.Max.Z {
			t.Errorf("Primitive %d box %v escapes root box %v", i, box, rootBox)
		}
	}
}

func TestBVH_UnboundedPrimitive(t *testing.T) {
	objects := []core.Hittable{
		NewSphere(core.NewVec3(0, 0, 0), 1.0, nil),
		&unboundedShape{},
	}

	if _, err := NewBVH(objects, 0, 1); err == nil {
		t.Fatal("Expected error for unbounded primitive, got nil")
	}
}

func TestBVH_EmptyList(t *testing.T) {
	if _, err := NewBVH(nil, 0, 1); err == nil {
		t.Fatal("Expected error for empty primitive list, got nil")
	}
}

func TestBVH_ShrinksInterval(t *testing.T) {
	// Two spheres along the same ray: the closer one must win regardless of
	// tree layout
	near := NewSphere(core.NewVec3(0, 0, 2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, 8), 0.5, nil)

	bvh, err := NewBVH([]core.Hittable{far, near}, 0, 1)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed, got %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, isHit := bvh.Hit(ray, 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
	}
}

package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mcray/go-raytracer/pkg/core"
	"github.com/mcray/go-raytracer/pkg/geometry"
	"github.com/mcray/go-raytracer/pkg/material"
)

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestPathTracer_DepthExhaustedReturnsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))),
	)
	tracer := NewPathTracer(0, core.NewVec3(1, 1, 1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := tracer.RayColor(ray, world, nil, newSampler(1))
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.8)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	tracer := NewPathTracer(10, background)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	got := tracer.RayColor(ray, world, nil, newSampler(2))
	if got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestPathTracer_DirectLightHit(t *testing.T) {
	emission := core.NewVec3(7, 7, 7)
	world := geometry.NewHittableList(
		geometry.NewXZRect(-1, 1, -1, 1, 2, material.NewDiffuseLight(emission)),
	)
	tracer := NewPathTracer(10, core.NewVec3(0, 0, 0))

	// Looking at the emitting face, the one with the outward normal
	ray := core.NewRay(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0))
	got := tracer.RayColor(ray, world, nil, newSampler(3))
	if got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}

	// The back of a one-sided light is dark
	below := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	got = tracer.RayColor(below, world, nil, newSampler(4))
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected dark back face, got %v", got)
	}
}

func TestPathTracer_ClosedUnlitSceneIsBlack(t *testing.T) {
	// A diffuse sphere enclosing the camera with no lights and a black
	// background: every path terminates with zero radiance
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 10, material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))),
	)
	tracer := NewPathTracer(8, core.NewVec3(0, 0, 0))
	sampler := newSampler(5)

	for i := 0; i < 50; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
		got := tracer.RayColor(ray, world, nil, sampler)
		if got.Luminance() > 1e-12 {
			t.Fatalf("Expected zero radiance in unlit scene, got %v", got)
		}
	}
}

func TestPathTracer_SpecularMirrorSeesLight(t *testing.T) {
	emission := core.NewVec3(5, 5, 5)
	// A mirror at the origin facing +y reflects a downward view toward a
	// light overhead of the camera path
	world := geometry.NewHittableList(
		geometry.NewXZRect(-5, 5, -5, 5, 0, material.NewMetal(core.NewVec3(1, 1, 1), 0)),
		geometry.NewFlipFace(
			geometry.NewXZRect(-5, 5, -5, 5, 20, material.NewDiffuseLight(emission))),
	)
	tracer := NewPathTracer(5, core.NewVec3(0, 0, 0))

	// Straight down at the mirror; the reflection goes straight up into the
	// light's underside
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	got := tracer.RayColor(ray, world, nil, newSampler(6))

	if math.Abs(got.X-emission.X) > 1e-9 {
		t.Errorf("Expected mirrored emission %v, got %v", emission, got)
	}
}

func TestPathTracer_LightSamplingMatchesMaterialSampling(t *testing.T) {
	// A diffuse floor under a small area light. With and without light
	// importance sampling the estimator must converge to the same mean.
	light := geometry.NewXZRect(-0.5, 0.5, -0.5, 0.5, 4, material.NewDiffuseLight(core.NewVec3(10, 10, 10)))
	floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	// Flip the light so its emitting face points down at the floor
	world := geometry.NewHittableList(floor, geometry.NewFlipFace(light))

	tracer := NewPathTracer(6, core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(0, 2, 3), core.NewVec3(0, -0.5, -0.75))

	estimate := func(lights core.DirectionSampler, seed int64, samples int) float64 {
		sampler := newSampler(seed)
		sum := 0.0
		for i := 0; i < samples; i++ {
			sum += tracer.RayColor(ray, world, lights, sampler).Luminance()
		}
		return sum / float64(samples)
	}

	const samples = 40000
	withLights := estimate(light, 7, samples)
	withoutLights := estimate(nil, 8, samples)

	if withLights <= 0 {
		t.Fatal("Expected positive radiance from lit floor")
	}
	relDiff := math.Abs(withLights-withoutLights) / withLights
	if relDiff > 0.15 {
		t.Errorf("Expected matching estimates, got %f vs %f (rel diff %.1f%%)",
			withLights, withoutLights, relDiff*100)
	}
}

func TestPathTracer_BrighterLightMeansBrighterFloor(t *testing.T) {
	makeScene := func(emission core.Vec3) (core.Hittable, core.DirectionSampler) {
		light := geometry.NewXZRect(-1, 1, -1, 1, 4, material.NewDiffuseLight(emission))
		floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
		return geometry.NewHittableList(floor, geometry.NewFlipFace(light)), light
	}

	tracer := NewPathTracer(6, core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(0, 2, 3), core.NewVec3(0, -0.5, -0.75))

	estimate := func(emission core.Vec3, seed int64) float64 {
		world, lights := makeScene(emission)
		sampler := newSampler(seed)
		sum := 0.0
		const samples = 2000
		for i := 0; i < samples; i++ {
			sum += tracer.RayColor(ray, world, lights, sampler).Luminance()
		}
		return sum / samples
	}

	bright := estimate(core.NewVec3(14, 14, 14), 9)
	dim := estimate(core.NewVec3(7, 7, 7), 9)

	if bright <= dim {
		t.Errorf("Expected brighter light to yield more radiance, got %f vs %f", bright, dim)
	}
}

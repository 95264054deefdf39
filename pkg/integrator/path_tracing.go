package integrator

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// PathTracer computes radiance estimates by recursive Monte Carlo path
// tracing with importance-sampled next-event estimation: at each diffuse
// bounce the scatter direction is drawn from a 50/50 mixture of the
// material's own distribution and a shape distribution toward the lights.
type PathTracer struct {
	MaxDepth   int       // Hard recursion cutoff; exhausted paths return black
	Background core.Vec3 // Constant background color for rays that miss
}

// NewPathTracer creates a path tracer with the given depth limit and background
func NewPathTracer(maxDepth int, background core.Vec3) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth, Background: background}
}

// RayColor returns the radiance arriving along the given camera ray.
// The world is typically a BVH root; lights may be nil, in which case
// diffuse bounces fall back to pure material sampling.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, lights core.DirectionSampler, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, lights, sampler, pt.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, world core.Hittable, lights core.DirectionSampler, sampler core.Sampler, depth int) core.Vec3 {
	// Depth exhaustion is not an error: the hard cutoff trades a little
	// bias for guaranteed termination
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := world.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		return pt.Background
	}

	emitted := pt.emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed, or a pure light: only the emission contributes
		return emitted
	}

	if scatter.Specular {
		return pt.specularColor(scatter, world, lights, sampler, depth)
	}

	return emitted.Add(pt.diffuseColor(ray, scatter, hit, world, lights, sampler, depth))
}

// specularColor follows the deterministic specular ray. Specular paths are
// not importance-sampled, so there is no PDF division.
func (pt *PathTracer) specularColor(scatter core.ScatterRecord, world core.Hittable, lights core.DirectionSampler, sampler core.Sampler, depth int) core.Vec3 {
	incoming := pt.rayColor(scatter.SpecularRay, world, lights, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// diffuseColor draws a scatter direction from the light/material mixture and
// evaluates the estimator attenuation · scatteringPDF · incoming / mixturePDF
func (pt *PathTracer) diffuseColor(rayIn core.Ray, scatter core.ScatterRecord, hit *core.HitRecord, world core.Hittable, lights core.DirectionSampler, sampler core.Sampler, depth int) core.Vec3 {
	pdf := scatter.PDF
	if lights != nil {
		lightPDF := core.NewHittablePDF(lights, hit.Point)
		pdf = core.NewMixturePDF(lightPDF, scatter.PDF)
	}

	direction := pdf.Generate(sampler)
	pdfValue := pdf.Value(direction)
	if pdfValue <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	scatteringPDF := hit.Material.ScatteringPDF(rayIn, *hit, scattered)

	incoming := pt.rayColor(scattered, world, lights, sampler, depth-1)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming)
}

// emittedLight returns the emitted light from a material if it's emissive
func (pt *PathTracer) emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emitted(ray, *hit)
	}
	return core.NewVec3(0, 0, 0)
}

package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is the query interface shared by every primitive: leaf shapes,
// transform wrappers, volumes and aggregates. The sampler parameter feeds
// primitives whose intersection test is stochastic (participating media);
// deterministic shapes ignore it.
//
// BoundingBox reports false when the primitive has no finite extent. Callers
// that require bounds (BVH construction, list unions) must propagate that
// failure instead of substituting a sentinel box.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// DirectionSampler is implemented by hittables that can be importance-sampled
// by solid angle from an external point, such as area lights.
type DirectionSampler interface {
	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin. Zero when the direction misses the shape.
	PDFValue(origin, direction Vec3) float64
	// RandomDirection draws a direction from origin toward the shape,
	// distributed according to PDFValue.
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always opposing the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter produces either a deterministic specular ray or a sampling
	// distribution for stochastic scattering. Returns false when the ray
	// is absorbed.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the density the material itself assigns to the
	// scattered direction. It must match the distribution Scatter samples
	// from, or the Monte Carlo estimator becomes biased. Zero for specular
	// materials.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit HitRecord) Vec3
}

// ScatterRecord is the result of a material scatter step. Exactly one mode is
// active: Specular carries a deterministic ray, otherwise PDF carries the
// sampling distribution for further scatter directions.
type ScatterRecord struct {
	Specular    bool
	SpecularRay Ray
	Attenuation Vec3
	PDF         PDF // nil for specular scattering
}

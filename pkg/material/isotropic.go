package material

import (
	"math"

	"github.com/mcray/go-raytracer/pkg/core"
)

// Isotropic scatters uniformly over the full sphere of directions, used as
// the phase function of constant-density media
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter implements the Material interface with a uniform sphere PDF
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Specular:    false,
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         core.NewSpherePDF(),
	}, true
}

// ScatteringPDF is the uniform sphere density, 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}

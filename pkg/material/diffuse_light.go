package material

import "github.com/mcray/go-raytracer/pkg/core"

// DiffuseLight is a light-emitting material. It never scatters.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light with a textured emission
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface: lights absorb all incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero: lights never scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the light color on the front face only, so a flipped
// rectangle emits from a single side
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emit.Value(hit.U, hit.V, hit.Point)
}

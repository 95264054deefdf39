package scene

import (
	"github.com/mcray/go-raytracer/pkg/core"
	"github.com/mcray/go-raytracer/pkg/geometry"
	"github.com/mcray/go-raytracer/pkg/material"
	"github.com/mcray/go-raytracer/pkg/renderer"
)

// NewShowcaseScene builds a dusk scene that exercises every surface type:
// a checkered ground, a moving diffuse sphere, glass and metal spheres,
// and a spherical lamp over a dark gradient-free sky.
func NewShowcaseScene(aspectRatio float64) (*Scene, error) {
	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)
	diffuse := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	lamp := material.NewDiffuseLight(core.NewVec3(10, 10, 10))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal),
		geometry.NewMovingSphere(
			core.NewVec3(-4, 1, 0), core.NewVec3(-4, 1.3, 0), 0, 1, 1.0, diffuse),
		geometry.NewSphere(core.NewVec3(0, 6, 3), 1.5, lamp),
	}

	world, err := geometry.NewBVH(objects, 0, 1)
	if err != nil {
		return nil, err
	}

	lights := geometry.NewSphere(core.NewVec3(0, 6, 3), 1.5, nil)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 1, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          25,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 13,
		Time0:         0,
		Time1:         1,
	})

	return NewScene(camera, world, lights, core.NewVec3(0.02, 0.03, 0.08)), nil
}

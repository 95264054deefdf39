package scene

import (
	"github.com/mcray/go-raytracer/pkg/core"
	"github.com/mcray/go-raytracer/pkg/geometry"
	"github.com/mcray/go-raytracer/pkg/material"
	"github.com/mcray/go-raytracer/pkg/renderer"
)

// cornellCamera is shared by the Cornell box variants
func cornellCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})
}

// NewCornellScene builds the classic Cornell box: red and green side walls,
// white floor, ceiling and back wall, a one-sided area light in the ceiling,
// and two rotated boxes.
func NewCornellScene(aspectRatio float64) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := []core.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewFlipFace(geometry.NewXZRect(213, 343, 227, 332, 554, light)),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	}

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))
	objects = append(objects, tall, short)

	world, err := geometry.NewBVH(objects, 0, 1)
	if err != nil {
		return nil, err
	}

	// Geometry-only proxy for sampling directions toward the light; its
	// material is never consulted
	lights := geometry.NewXZRect(213, 343, 227, 332, 554, nil)

	return NewScene(cornellCamera(aspectRatio), world, lights, core.NewVec3(0, 0, 0)), nil
}

// NewCornellSmokeScene is the Cornell box with the two boxes replaced by
// participating media: white mist and black smoke.
func NewCornellSmokeScene(aspectRatio float64) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	objects := []core.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewFlipFace(geometry.NewXZRect(113, 443, 127, 432, 554, light)),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	}

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	objects = append(objects,
		geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))),
	)

	world, err := geometry.NewBVH(objects, 0, 1)
	if err != nil {
		return nil, err
	}

	lights := geometry.NewXZRect(113, 443, 127, 432, 554, nil)

	return NewScene(cornellCamera(aspectRatio), world, lights, core.NewVec3(0, 0, 0)), nil
}

package scene

import (
	"github.com/mcray/go-raytracer/pkg/core"
	"github.com/mcray/go-raytracer/pkg/renderer"
)

// Scene bundles the primitive tree root, the light proxies used for
// importance sampling, the camera and the background color. Immutable after
// construction; safely shared across render workers.
type Scene struct {
	camera     *renderer.Camera
	world      core.Hittable
	lights     core.DirectionSampler
	background core.Vec3
}

// NewScene assembles a scene from its parts. lights may be nil when the
// scene has no lights worth importance sampling.
func NewScene(camera *renderer.Camera, world core.Hittable, lights core.DirectionSampler, background core.Vec3) *Scene {
	return &Scene{
		camera:     camera,
		world:      world,
		lights:     lights,
		background: background,
	}
}

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// World returns the primitive tree root
func (s *Scene) World() core.Hittable { return s.world }

// Lights returns the light proxies, or nil
func (s *Scene) Lights() core.DirectionSampler { return s.lights }

// Background returns the constant background color
func (s *Scene) Background() core.Vec3 { return s.background }

package renderer

import (
	"math"
	"testing"

	"github.com/mcray/go-raytracer/pkg/core"
)

// fixedSampler returns a constant for every draw, making camera rays
// deterministic in tests
type fixedSampler struct {
	value float64
}

func (f *fixedSampler) Get1D() float64 {
	return f.value
}

func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}

func (f *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 1.0,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	ray := camera.GetRay(0.5, 0.5, &fixedSampler{value: 0.5})
	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray origin at camera position, got %v", ray.Origin)
	}

	direction := ray.Direction.Normalize()
	expected := core.NewVec3(0, 0, -1)
	if direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray toward %v, got %v", expected, direction)
	}
}

func TestCamera_CornerRays(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := &fixedSampler{value: 0.5}

	// With a 90° field of view and unit focus distance the viewport spans
	// [-1, 1]² at z = -1
	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"lower right", 1, 0, core.NewVec3(1, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_ShutterTime(t *testing.T) {
	config := testCameraConfig()
	config.Time0 = 0.25
	config.Time1 = 0.75
	camera := NewCamera(config)

	// A mid-range draw lands mid-shutter
	ray := camera.GetRay(0.5, 0.5, &fixedSampler{value: 0.5})
	if math.Abs(ray.Time-0.5) > 1e-9 {
		t.Errorf("Expected shutter time 0.5, got %f", ray.Time)
	}

	ray = camera.GetRay(0.5, 0.5, &fixedSampler{value: 0})
	if math.Abs(ray.Time-0.25) > 1e-9 {
		t.Errorf("Expected shutter open time 0.25, got %f", ray.Time)
	}
}

func TestCamera_PinholeIgnoresLens(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// With zero aperture every draw produces the same origin
	a := camera.GetRay(0.3, 0.7, &fixedSampler{value: 0.1})
	b := camera.GetRay(0.3, 0.7, &fixedSampler{value: 0.9})
	if a.Origin != b.Origin {
		t.Errorf("Expected identical pinhole origins, got %v vs %v", a.Origin, b.Origin)
	}
}

func TestCamera_ApertureOffsetsOrigin(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	camera := NewCamera(config)

	// An off-center lens draw shifts the ray origin within the lens radius
	ray := camera.GetRay(0.5, 0.5, &fixedSampler{value: 0.9})
	offset := ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length()
	if offset == 0 {
		t.Error("Expected lens draw to offset the ray origin")
	}
	if offset > 0.25+1e-9 {
		t.Errorf("Expected offset within lens radius 0.25, got %f", offset)
	}
}

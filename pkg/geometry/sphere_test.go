package geometry

import (
	"math"
	"testing"

	"github.com/mcray/go-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_EntryDistance(t *testing.T) {
	// A ray aimed at the center from distance d hits at t = d - r
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-8.0) > 1e-9 {
		t.Errorf("Expected entry at t=8, got t=%f", hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Interval ends before the sphere
	if hit, isHit := sphere.Hit(ray, 0.001, 0.5, nil); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Interval starts past the sphere
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0, nil); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin between the two roots selects the far root
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0, nil)
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		direction core.Vec3
		expectedU float64
		expectedV float64
	}{
		{"+x pole", core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0), 0.5, 0.5},
		{"top", core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 0.5, 1.0},
		{"bottom", core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.direction)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.U-tt.expectedU) > 1e-9 || math.Abs(hit.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected (u, v) = (%f, %f), got (%f, %f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, nil)

	box, bounded := sphere.BoundingBox(0, 1)
	if !bounded {
		t.Fatal("Expected sphere to be bounded")
	}
	expected := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestSphere_PDFValue(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 10), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)

	// Uniform over the subtended cone: 1 / (2π (1 - cos θmax))
	cosThetaMax := math.Sqrt(1 - 1.0/100.0)
	expected := 1 / (2 * math.Pi * (1 - cosThetaMax))

	got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1))
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected density %f, got %f", expected, got)
	}

	// Directions that miss the sphere carry zero density
	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, -1)); got != 0 {
		t.Errorf("Expected zero density away from sphere, got %f", got)
	}
}

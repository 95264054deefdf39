package core

import (
	"testing"
)

func TestSurrounding_ContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0.5, 3, 0.5))

	union := Surrounding(a, b)
	expected := NewAABB(NewVec3(-2, 0, 0), NewVec3(1, 3, 1))
	if union != expected {
		t.Errorf("Expected union %v, got %v", expected, union)
	}

	// Union is commutative
	if Surrounding(b, a) != union {
		t.Error("Expected Surrounding to be commutative")
	}

	// A box absorbs itself
	if Surrounding(a, a) != a {
		t.Error("Expected Surrounding(a, a) == a")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		tMin      float64
		tMax      float64
		expectHit bool
	}{
		{
			name:      "straight through center",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      1000,
			expectHit: true,
		},
		{
			name:      "misses to the side",
			ray:       NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      1000,
			expectHit: false,
		},
		{
			name:      "pointing away",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      1000,
			expectHit: false,
		},
		{
			name:      "interval ends before box",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      2,
			expectHit: false,
		},
		{
			name:      "interval starts after box",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			tMin:      10,
			tMax:      1000,
			expectHit: false,
		},
		{
			name:      "origin inside box",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)),
			tMin:      0.001,
			tMax:      1000,
			expectHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_Hit_ParallelRay(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	// Direction has a zero component; the slab test must not divide by zero.
	// Origin within the x slab: the x axis places no constraint.
	inside := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Hit(inside, 0.001, 1000) {
		t.Error("Expected hit for parallel ray with origin inside the slab")
	}

	// Origin outside the x slab can never enter it
	outside := NewRay(NewVec3(5, 0, -5), NewVec3(0, 0, 1))
	if box.Hit(outside, 0.001, 1000) {
		t.Error("Expected miss for parallel ray with origin outside the slab")
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, 0), NewVec3(0, 0, 5))
	expected := NewAABB(NewVec3(-1, -2, 0), NewVec3(1, 2, 5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestAABB_IsValid(t *testing.T) {
	if !NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).IsValid() {
		t.Error("Expected well-ordered box to be valid")
	}
	if NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1)).IsValid() {
		t.Error("Expected inverted box to be invalid")
	}
}

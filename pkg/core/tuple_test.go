package core

import (
	"math"
	"testing"
)

func TestPointVectorAlgebra(t *testing.T) {
	p1 := NewPoint(3, 2, 1)
	p2 := NewPoint(5, 6, 7)

	// point - point = vector
	if v := p1.Subtract(p2); !v.Equals(NewVector(-2, -4, -6)) {
		t.Errorf("Expected vector (-2,-4,-6), got %v", v)
	}

	// point + vector = point
	if p := NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)); !p.Equals(NewPoint(1, 1, 6)) {
		t.Errorf("Expected point (1,1,6), got %v", p)
	}

	// point - vector = point
	if p := p1.SubtractVector(NewVector(5, 6, 7)); !p.Equals(NewPoint(-2, -4, -6)) {
		t.Errorf("Expected point (-2,-4,-6), got %v", p)
	}

	// vector + vector = vector
	if v := NewVector(3, -2, 5).Add(NewVector(-2, 3, 1)); !v.Equals(NewVector(1, 1, 6)) {
		t.Errorf("Expected vector (1,1,6), got %v", v)
	}
}

func TestVector_Magnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected float64
	}{
		{"unit x", NewVector(1, 0, 0), 1},
		{"unit y", NewVector(0, 1, 0), 1},
		{"unit z", NewVector(0, 0, 1), 1},
		{"positive", NewVector(1, 2, 3), math.Sqrt(14)},
		{"negative", NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Magnitude(); !ApproxEq(got, tt.expected) {
				t.Errorf("Expected magnitude %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	v := NewVector(1, 2, 3).Normalize()
	if !ApproxEq(v.Magnitude(), 1.0) {
		t.Errorf("Expected unit magnitude, got %f", v.Magnitude())
	}
	if !v.Equals(NewVector(0.26726, 0.53452, 0.80178)) {
		t.Errorf("Unexpected normalized vector %v", v)
	}

	// Zero vector stays zero rather than producing NaN
	if z := NewVector(0, 0, 0).Normalize(); !z.Equals(NewVector(0, 0, 0)) {
		t.Errorf("Expected zero vector, got %v", z)
	}
}

func TestVector_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot product 20, got %f", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Expected cross (-1,2,-1), got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Expected cross (1,-2,1), got %v", got)
	}
}

func TestVector_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		normal   Vector
		expected Vector
	}{
		{
			name:     "approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "slanted surface",
			v:        NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEpsilonEquality(t *testing.T) {
	if !NewPoint(1, 2, 3).Equals(NewPoint(1+1e-6, 2, 3)) {
		t.Error("Expected points within epsilon to be equal")
	}
	if NewPoint(1, 2, 3).Equals(NewPoint(1.001, 2, 3)) {
		t.Error("Expected points outside epsilon to differ")
	}
}

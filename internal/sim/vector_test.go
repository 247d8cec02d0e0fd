package sim

import (
	"math"
	"testing"
)

func TestVecAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected Vec2
	}{
		{"positive components", Vec2{1, 2}, Vec2{3, 4}, Vec2{4, 6}},
		{"negative components", Vec2{1, -2}, Vec2{-3, 4}, Vec2{-2, 2}},
		{"zero vector identity", Vec2{5, 7}, Vec2{}, Vec2{5, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecScale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		s        float64
		expected Vec2
	}{
		{"double", Vec2{1, -2}, 2, Vec2{2, -4}},
		{"zero scalar", Vec2{3, 4}, 0, Vec2{0, 0}},
		{"negative scalar", Vec2{3, 4}, -1, Vec2{-3, -4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Scale(tc.s); got != tc.expected {
				t.Errorf("Scale(%v) = %v, expected %v", tc.s, got, tc.expected)
			}
		})
	}
}

func TestVecLength(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"3-4-5 triangle", Vec2{3, 4}, 5},
		{"unit x", Vec2{1, 0}, 1},
		{"zero vector", Vec2{}, 0},
		{"diagonal", Vec2{1, 1}, math.Sqrt2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Length(); math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("Length() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec2{3, 4}
	v.Normalize(v.Length())

	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, expected 1", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("normalized vector = %v, expected (0.6, 0.8)", v)
	}
}

func TestVecNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalize(0) should panic")
		}
	}()

	v := Vec2{}
	v.Normalize(v.Length())
}

package mathutil

import (
	"math"
	"testing"
)

func TestMat3Identity(t *testing.T) {
	v := Vec3{1.5, -2, 7}
	if got := Mat3Identity().MulVec3(v); got != v {
		t.Errorf("Expected identity to preserve %v, got %v", v, got)
	}
}

func TestOuter(t *testing.T) {
	u := Vec3{1, 2, 3}
	m := Outer(u)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got, want := m.At(r, c), u[r]*u[c]; got != want {
				t.Errorf("At(%d,%d): expected %f, got %f", r, c, want, got)
			}
		}
	}
}

func TestMat3_Sub(t *testing.T) {
	m := Mat3Identity().Sub(Mat3Identity())
	if m != (Mat3{}) {
		t.Errorf("Expected zero matrix, got %v", m)
	}
}

func TestAxisProjector(t *testing.T) {
	p := NewAxisProjector(Vec3{0, 2, 0})
	if p.Axis != (Vec3{0, 1, 0}) {
		t.Fatalf("Expected normalized axis (0,1,0), got %v", p.Axis)
	}

	v := Vec3{3, 4, 5}
	par := p.Parallel(v)
	orth := p.Orthogonal(v)

	if !par.ApproxEqual(Vec3{0, 4, 0}) {
		t.Errorf("Expected parallel part (0,4,0), got %v", par)
	}
	if !orth.ApproxEqual(Vec3{3, 0, 5}) {
		t.Errorf("Expected orthogonal part (3,0,5), got %v", orth)
	}
	if !par.Add(orth).ApproxEqual(v) {
		t.Errorf("Expected parts to sum to %v, got %v", v, par.Add(orth))
	}
}

func TestAxisProjector_Oblique(t *testing.T) {
	p := NewAxisProjector(Vec3{1, 1, 1})
	v := Vec3{2, -1, 0.5}
	orth := p.Orthogonal(v)

	if math.Abs(orth.Dot(p.Axis)) > 1e-12 {
		t.Errorf("Expected orthogonal part perpendicular to axis, dot=%g", orth.Dot(p.Axis))
	}
	if c := p.Parallel(v).Cross(p.Axis); c.Len() > 1e-12 {
		t.Errorf("Expected parallel part collinear with axis, cross=%v", c)
	}
}

package geom

import (
	"errors"
	"math"
	"testing"

	"shape-raycaster/internal/mathutil"
)

func mustPlane(t *testing.T, point, normal mathutil.Vec3) Plane {
	t.Helper()
	p, err := NewPlane(point, normal, testMat)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return p
}

func TestNewPlane(t *testing.T) {
	p := mustPlane(t, mathutil.Zero, mathutil.Vec3{0, 5, 0})
	if p.Normal != (mathutil.Vec3{0, 1, 0}) {
		t.Errorf("Expected normalized normal, got %v", p.Normal)
	}

	if _, err := NewPlane(mathutil.Zero, mathutil.Zero, testMat); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape for zero normal, got %v", err)
	}
}

func TestPlane_Intersect_Basic(t *testing.T) {
	p := mustPlane(t, mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0, 1, 0})
	ray := NewRay(mathutil.Zero, mathutil.Vec3{0, -1, -1})

	h := p.Intersect(ray)
	if !h.Ok() {
		t.Fatal("Expected hit, got miss")
	}
	if !approxEqual(h.T, 1, 1e-12) {
		t.Errorf("Expected t=1, got %f", h.T)
	}
	if !ray.At(h.T).ApproxEqual(mathutil.Vec3{0, -1, -1}) {
		t.Errorf("Expected hit point (0,-1,-1), got %v", ray.At(h.T))
	}
	if h.Normal != (mathutil.Vec3{0, 1, 0}) {
		t.Errorf("Expected normal (0,1,0), got %v", h.Normal)
	}
}

func TestPlane_Intersect_Parallel(t *testing.T) {
	p := mustPlane(t, mathutil.Zero, mathutil.Vec3{0, 1, 0})

	origins := []mathutil.Vec3{
		{0, 1, 0},
		{0, 0, 0},
		{5, -3, 2},
	}
	for _, o := range origins {
		ray := NewRay(o, mathutil.Vec3{1, 0, -1})
		if h := p.Intersect(ray); h.Ok() {
			t.Errorf("origin %v: expected miss for parallel ray, got t=%f", o, h.T)
		}
		if got := p.Solve(ray); !math.IsInf(got, -1) {
			t.Errorf("origin %v: expected Solve to return -Inf, got %f", o, got)
		}
	}
}

func TestPlane_Intersect_Behind(t *testing.T) {
	p := mustPlane(t, mathutil.Zero, mathutil.Vec3{0, 1, 0})
	ray := NewRay(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 1, 0})

	if got := p.Solve(ray); !approxEqual(got, -1, 1e-12) {
		t.Errorf("Expected raw solution t=-1, got %f", got)
	}
	if h := p.Intersect(ray); h.Ok() {
		t.Errorf("Expected miss for plane behind origin, got t=%f", h.T)
	}
}

func TestPlane_Intersect_FacesRay(t *testing.T) {
	p := mustPlane(t, mathutil.Zero, mathutil.Vec3{0, 1, 0})

	tests := []struct {
		name   string
		origin mathutil.Vec3
		dir    mathutil.Vec3
		want   mathutil.Vec3
	}{
		{"from above", mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0, 1, 0}},
		{"from below", mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := p.Intersect(NewRay(tt.origin, tt.dir))
			if !h.Ok() {
				t.Fatal("Expected hit, got miss")
			}
			if h.Normal != tt.want {
				t.Errorf("Expected normal %v, got %v", tt.want, h.Normal)
			}
		})
	}
}

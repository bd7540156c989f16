package geom

import (
	"fmt"
	"math"

	"shape-raycaster/internal/mathutil"
)

// Sphere is centered at Center with radius Radius.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material Material
}

// NewSphere validates the radius and returns the sphere.
func NewSphere(center mathutil.Vec3, radius float64, mat Material) (Sphere, error) {
	if !(radius > 0) {
		return Sphere{}, fmt.Errorf("geom: sphere radius %g: %w", radius, ErrInvalidShape)
	}
	return Sphere{Center: center, Radius: radius, Material: mat}, nil
}

// Intersect solves |O + tD − C|² = r² for the smallest positive t.
// A tangent ray (zero discriminant) counts as a miss.
func (s Sphere) Intersect(r Ray) Hit {
	v := s.Center.Sub(r.Origin)
	a := r.Dir.Dot(r.Dir)
	if a == 0 {
		return NoHit
	}
	b := -2 * r.Dir.Dot(v)
	c := v.Dot(v) - s.Radius*s.Radius
	delta := b*b - 4*a*c
	if delta <= 0 {
		return NoHit
	}

	sq := math.Sqrt(delta)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)

	var t float64
	switch {
	case t1 <= 0 && t2 <= 0:
		return NoHit
	case t2 <= 0:
		t = t1
	case t1 <= 0:
		t = t2
	default:
		t = math.Min(t1, t2)
	}

	n := r.At(t).Sub(s.Center).Normalize()
	return Hit{T: t, Normal: faceAgainst(n, r.Dir)}
}

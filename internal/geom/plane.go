package geom

import (
	"fmt"
	"math"

	"shape-raycaster/internal/mathutil"
)

// Plane is the infinite plane through Point with unit normal Normal.
type Plane struct {
	Point    mathutil.Vec3
	Normal   mathutil.Vec3
	Material Material
}

// NewPlane normalizes the normal. A zero normal is rejected.
func NewPlane(point, normal mathutil.Vec3, mat Material) (Plane, error) {
	if normal.Len() < mathutil.Epsilon {
		return Plane{}, fmt.Errorf("geom: plane normal %v: %w", normal, ErrInvalidShape)
	}
	return Plane{Point: point, Normal: normal.Normalize(), Material: mat}, nil
}

// Solve returns t = −n·(O − P) / n·D without filtering its sign, or -Inf
// when the ray is parallel to the plane. Parallelism is judged relative to
// |D|, so short direction vectors still intersect.
func (p Plane) Solve(r Ray) float64 {
	top := p.Normal.Dot(r.Origin.Sub(p.Point))
	bottom := p.Normal.Dot(r.Dir)
	if math.Abs(bottom) <= mathutil.Epsilon*r.Dir.Len() {
		return math.Inf(-1)
	}
	return -top / bottom
}

// Intersect returns the forward hit; solutions at or behind the origin miss.
func (p Plane) Intersect(r Ray) Hit {
	t := p.Solve(r)
	if mathutil.IsNoHit(t) || t <= 0 {
		return NoHit
	}
	return Hit{T: t, Normal: faceAgainst(p.Normal, r.Dir)}
}

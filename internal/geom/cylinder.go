package geom

import (
	"fmt"
	"math"

	"shape-raycaster/internal/mathutil"
)

// Cylinder is a finite capped cylinder standing on Base along Axis.
type Cylinder struct {
	Radius   float64
	Height   float64
	Base     mathutil.Vec3 // center of the bottom cap
	Top      mathutil.Vec3 // center of the top cap, Base + Height·Axis
	Axis     mathutil.Vec3 // unit
	Material Material

	proj mathutil.AxisProjector
}

// NewCylinder normalizes axis and derives the top center.
func NewCylinder(radius, height float64, base, axis mathutil.Vec3, mat Material) (Cylinder, error) {
	if !(radius > 0) {
		return Cylinder{}, fmt.Errorf("geom: cylinder radius %g: %w", radius, ErrInvalidShape)
	}
	if !(height > 0) {
		return Cylinder{}, fmt.Errorf("geom: cylinder height %g: %w", height, ErrInvalidShape)
	}
	if axis.Len() < mathutil.Epsilon {
		return Cylinder{}, fmt.Errorf("geom: cylinder axis %v: %w", axis, ErrInvalidShape)
	}
	proj := mathutil.NewAxisProjector(axis)
	return Cylinder{
		Radius:   radius,
		Height:   height,
		Base:     base,
		Top:      base.Add(proj.Axis.Scale(height)),
		Axis:     proj.Axis,
		Material: mat,
		proj:     proj,
	}, nil
}

// Intersect tests the lateral surface and both caps and keeps the nearest
// accepted root.
func (c Cylinder) Intersect(r Ray) Hit {
	t := math.Inf(1)
	var n mathutil.Vec3

	// Lateral surface, solved in the plane orthogonal to the axis.
	s := r.Origin.Sub(c.Base)
	mdr := c.proj.Orthogonal(r.Dir)
	ms := c.proj.Orthogonal(s)

	a := mdr.Dot(mdr)
	b := 2 * mdr.Dot(ms)
	cc := ms.Dot(ms) - c.Radius*c.Radius
	delta := b*b - 4*a*cc

	// a is |D⊥|²; compare it against |D|² so the scale of D does not matter.
	if a > mathutil.Epsilon*r.Dir.Dot(r.Dir) && delta > 0 {
		sq := math.Sqrt(delta)
		for _, root := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if root <= 0 || root >= t {
				continue
			}
			cbp := r.At(root).Sub(c.Base)
			cbe := c.proj.Parallel(cbp)
			if cbe.Dot(c.Axis) > 0 && cbe.Len() < c.Height {
				t = root
				n = c.proj.Orthogonal(cbp).Normalize()
			}
		}
	}

	// Caps: the top faces +Axis, the bottom faces −Axis.
	capNormal := c.Axis.Scale(-mathutil.Sign(c.Axis.Dot(r.Dir)))
	for _, cp := range [2]struct {
		center mathutil.Vec3
		normal mathutil.Vec3
	}{
		{c.Top, c.Axis},
		{c.Base, c.Axis.Neg()},
	} {
		bottom := r.Dir.Dot(cp.normal)
		if math.Abs(bottom) <= mathutil.Epsilon*r.Dir.Len() {
			continue
		}
		tc := -r.Origin.Sub(cp.center).Dot(cp.normal) / bottom
		if tc >= 0 && tc < t && r.At(tc).Sub(cp.center).Len() <= c.Radius {
			t = tc
			n = capNormal
		}
	}

	if math.IsInf(t, 1) {
		return NoHit
	}
	return Hit{T: t, Normal: faceAgainst(n, r.Dir)}
}

package mathutil

// AxisProjector splits vectors into the component along a unit axis and the
// component orthogonal to it. Solids of revolution (cylinders, cones,
// capsules) share it.
type AxisProjector struct {
	Axis  Vec3 // unit length
	Along Mat3 // u⊗u
	Ortho Mat3 // I − u⊗u
}

// NewAxisProjector builds the projector pair for axis. The axis is normalized
// here; it must be non-zero.
func NewAxisProjector(axis Vec3) AxisProjector {
	u := axis.Normalize()
	along := Outer(u)
	return AxisProjector{
		Axis:  u,
		Along: along,
		Ortho: Mat3Identity().Sub(along),
	}
}

// Parallel returns the component of v along the axis.
func (p AxisProjector) Parallel(v Vec3) Vec3 {
	return p.Along.MulVec3(v)
}

// Orthogonal returns the component of v perpendicular to the axis.
func (p AxisProjector) Orthogonal(v Vec3) Vec3 {
	return p.Ortho.MulVec3(v)
}

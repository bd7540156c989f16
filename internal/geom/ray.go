package geom

import "shape-raycaster/internal/mathutil"

// Ray is a half-line Origin + t·Dir. Dir need not be unit length.
type Ray struct {
	Origin mathutil.Vec3
	Dir    mathutil.Vec3
}

func NewRay(origin, dir mathutil.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

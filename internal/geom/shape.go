package geom

import (
	"errors"
	"fmt"
	"math"

	"shape-raycaster/internal/mathutil"
)

// ErrInvalidShape is returned by constructors for out-of-domain parameters.
var ErrInvalidShape = errors.New("invalid shape")

// Material is the surface description attached to a shape.
type Material struct {
	Color mathutil.Vec3 // 0–1 range
}

// Hit is the result of an intersection test.
type Hit struct {
	T      float64       // ray parameter, -Inf when there is no hit
	Normal mathutil.Vec3 // unit, facing the incoming ray
}

// NoHit is the sentinel returned when a ray misses.
var NoHit = Hit{T: math.Inf(-1)}

// Ok reports whether h is a forward intersection.
func (h Hit) Ok() bool {
	return !mathutil.IsNoHit(h.T) && h.T >= 0
}

// Shape is the closed set {Sphere, Plane, Cylinder}. Only this package can
// add variants.
type Shape interface {
	shape()
}

func (Sphere) shape()   {}
func (Plane) shape()    {}
func (Cylinder) shape() {}

// Intersect returns the nearest forward hit of r against s, or NoHit.
func Intersect(s Shape, r Ray) Hit {
	switch v := s.(type) {
	case Sphere:
		return v.Intersect(r)
	case Plane:
		return v.Intersect(r)
	case Cylinder:
		return v.Intersect(r)
	default:
		panic(fmt.Sprintf("geom: unknown shape %T", s))
	}
}

// MaterialOf returns the material carried by s.
func MaterialOf(s Shape) Material {
	switch v := s.(type) {
	case Sphere:
		return v.Material
	case Plane:
		return v.Material
	case Cylinder:
		return v.Material
	default:
		panic(fmt.Sprintf("geom: unknown shape %T", s))
	}
}

// Name returns a short lowercase name for the variant.
func Name(s Shape) string {
	switch s.(type) {
	case Sphere:
		return "sphere"
	case Plane:
		return "plane"
	case Cylinder:
		return "cylinder"
	default:
		panic(fmt.Sprintf("geom: unknown shape %T", s))
	}
}

// faceAgainst flips n so that it opposes dir.
func faceAgainst(n, dir mathutil.Vec3) mathutil.Vec3 {
	if n.Dot(dir) > 0 {
		return n.Neg()
	}
	return n
}

package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// Used for positions, directions, normals and colors.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div divides every component by s.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Mul is the elementwise (Hadamard) product.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivElem is the elementwise quotient.
func (a Vec3) DivElem(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return mgl64.Vec3(a).Dot(mgl64.Vec3(b))
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3(mgl64.Vec3(a).Cross(mgl64.Vec3(b)))
}

func (v Vec3) Len() float64 {
	return mgl64.Vec3(v).Len()
}

// Normalize divides v by its length. The caller guarantees v is non-zero;
// a zero vector yields NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// Clamp limits every component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		math.Min(math.Max(v[0], lo), hi),
		math.Min(math.Max(v[1], lo), hi),
		math.Min(math.Max(v[2], lo), hi),
	}
}

// RGBNormal maps a color from the 0–255 range to 0–1.
func (v Vec3) RGBNormal() Vec3 {
	return v.Div(255)
}

// RGB255 maps a color from the 0–1 range to 0–255.
func (v Vec3) RGB255() Vec3 {
	return v.Scale(255)
}

// ApproxEqual compares component-wise with an absolute tolerance of Epsilon.
func (a Vec3) ApproxEqual(b Vec3) bool {
	return mgl64.Vec3(a).ApproxFuncEqual(mgl64.Vec3(b), func(x, y float64) bool {
		return math.Abs(x-y) <= Epsilon
	})
}

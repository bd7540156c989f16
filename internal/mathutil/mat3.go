package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Mat3 is a 3×3 matrix stored column-major, same layout as mgl64.Mat3.
// Value type for zero heap allocation.
type Mat3 mgl64.Mat3

func Mat3Identity() Mat3 {
	return Mat3(mgl64.Ident3())
}

// Outer returns u⊗u. For a unit u this projects any vector onto the line
// spanned by u.
func Outer(u Vec3) Mat3 {
	return Mat3(mgl64.Vec3(u).OuterProd3(mgl64.Vec3(u)))
}

// Sub returns m − n.
func (m Mat3) Sub(n Mat3) Mat3 {
	return Mat3(mgl64.Mat3(m).Sub(mgl64.Mat3(n)))
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3(mgl64.Mat3(m).Mul3x1(mgl64.Vec3(v)))
}

// At returns the element at (row, col).
func (m Mat3) At(row, col int) float64 {
	return mgl64.Mat3(m).At(row, col)
}

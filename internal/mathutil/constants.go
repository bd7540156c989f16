package mathutil

import "math"

// Epsilon is the relative threshold below which a denominator or quadratic
// leading coefficient is treated as zero. Geometry scales it by the ray
// direction's length.
const Epsilon = 1e-9

var (
	// Zero is the null vector.
	Zero = Vec3{}

	// ViewAxis is the direction the camera looks along (−Z, right-handed).
	ViewAxis = Vec3{0, 0, -1}

	// Black and White in the 0–1 color range.
	Black = Vec3{0, 0, 0}
	White = Vec3{1, 1, 1}
)

// Sign returns -1, 0 or +1 following the sign of x. Zero maps to 0.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// IsNoHit reports whether t is the negative-infinity sentinel.
func IsNoHit(t float64) bool {
	return math.IsInf(t, -1)
}

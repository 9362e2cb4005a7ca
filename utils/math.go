package utils

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp blends a toward b by t; t is not clamped.
func Lerp(a, t, b float32) float32 {
	return a*(1-t) + b*t
}

func Vec3Lerp(a mgl32.Vec3, t float32, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a[0], t, b[0]),
		Lerp(a[1], t, b[1]),
		Lerp(a[2], t, b[2]),
	}
}

// SignOf returns -1, 0 or 1
func SignOf(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// CubicBezier evaluates the cubic Bezier curve over four control points
// componentwise. At t=0 the result is p0 and at t=1 it is p3, bit for bit.
func CubicBezier(p0, p1, p2, p3 mgl32.Vec3, t float32) (v mgl32.Vec3) {
	invT := 1 - t
	tSquared := t * t
	invTSquared := invT * invT
	tCubed := tSquared * t
	invTCubed := invTSquared * invT

	for i := range v {
		v[i] = invTCubed*p0[i] +
			3*invTSquared*t*p1[i] +
			3*invT*tSquared*p2[i] +
			tCubed*p3[i]
	}
	return v
}

// MulElem multiplies two vectors component by component.
func MulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

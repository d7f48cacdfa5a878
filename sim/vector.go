package sim

import "math"

// Vec3 is a position in box-relative units.
type Vec3 [3]float64

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Norm2 returns the squared length of v.
func (v Vec3) Norm2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Wrap maps v onto its nearest periodic image in the unit cell by subtracting
// the nearest integer from each component. Wrapping a wrapped vector is a no-op.
// The same rule gives the minimum-image separation when applied to r_i - r_j.
func (v Vec3) Wrap() Vec3 {
	return Vec3{
		wrapComponent(v[0]),
		wrapComponent(v[1]),
		wrapComponent(v[2]),
	}
}

// wrapComponent rounds half away from zero like math.Round; 0.5 maps to -0.5.
func wrapComponent(x float64) float64 {
	w := x - math.Round(x)
	if w >= 0.5 {
		w -= 1
	}
	return w
}

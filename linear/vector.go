// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements quaternion math.
package linear

// V4 is a 4-component vector of float32.
// It is the array form of a quaternion.
type V4 [4]float32

// AddV4 returns v + w.
func AddV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV4 returns v - w.
func SubV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float32, v V4) (u V4) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4(v, w V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

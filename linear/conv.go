// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
	"math"
)

// ToWXYZ returns q as a vector in w, x, y, z order.
func ToWXYZ(q Q) V4 { return V4{q.W, q.X, q.Y, q.Z} }

// ToXYZW returns q as a vector in x, y, z, w order.
func ToXYZW(q Q) V4 { return V4{q.X, q.Y, q.Z, q.W} }

func checkLen(s []float32) error {
	if len(s) != 4 {
		return fmt.Errorf("%w: invalid length %d (want 4)", ErrInvalidArg, len(s))
	}
	return nil
}

// FromWXYZ creates a quaternion from s, which must
// contain exactly 4 elements in w, x, y, z order.
func FromWXYZ(s []float32) (q Q, err error) {
	err = q.SetWXYZ(s)
	return
}

// FromXYZW creates a quaternion from s, which must
// contain exactly 4 elements in x, y, z, w order.
func FromXYZW(s []float32) (q Q, err error) {
	err = q.SetXYZW(s)
	return
}

// SetWXYZ sets q from s, in w, x, y, z order.
// It fails with ErrInvalidArg if len(s) is not 4,
// in which case q is not modified.
func (q *Q) SetWXYZ(s []float32) error {
	if err := checkLen(s); err != nil {
		return err
	}
	*q = Q{s[0], s[1], s[2], s[3]}
	return nil
}

// SetXYZW is like SetWXYZ but takes s in
// x, y, z, w order.
func (q *Q) SetXYZW(s []float32) error {
	if err := checkLen(s); err != nil {
		return err
	}
	*q = Q{s[3], s[0], s[1], s[2]}
	return nil
}

// FromEuler creates a quaternion from the given
// Euler angles, in radians.
// The rotations are composed in X, Y, Z order.
func FromEuler(x, y, z float32) Q {
	sx, cx := sincos(x)
	sy, cy := sincos(y)
	sz, cz := sincos(z)
	return Q{
		W: cx*cy*cz + sx*sy*sz,
		X: sx*cy*cz + cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz + sx*sy*cz,
	}
}

// sincos returns the sine and cosine of a/2.
// It computes in float64 for accuracy.
func sincos(a float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(a) / 2)
	return float32(s64), float32(c64)
}

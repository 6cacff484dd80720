// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package interop converts linear quaternions to and from
// the quaternion types of other math packages.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gviegas/quater/linear"
)

// ToMgl32 converts q to an mgl32.Quat.
func ToMgl32(q linear.Q) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// FromMgl32 converts an mgl32.Quat to a linear.Q.
func FromMgl32(q mgl32.Quat) linear.Q {
	return linear.Make(q.W, q.V[0], q.V[1], q.V[2])
}

// ToNumber converts q to a quat.Number.
// The conversion is exact.
func ToNumber(q linear.Q) quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// FromNumber converts a quat.Number to a linear.Q.
// Components are rounded to float32.
func FromNumber(n quat.Number) linear.Q {
	return linear.Make(float32(n.Real), float32(n.Imag), float32(n.Jmag), float32(n.Kmag))
}

// Rotate rotates v by q, which should be a unit quaternion.
// It computes q ⋅ v ⋅ q*, where v is treated as a
// quaternion with zero scalar part.
func Rotate(q linear.Q, v mgl32.Vec3) mgl32.Vec3 {
	p := linear.Make(0, v[0], v[1], v[2])
	c := linear.ConjQ(q)
	p.Mul(&q, &p)
	p.Mul(&p, &c)
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

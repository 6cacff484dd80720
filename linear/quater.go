// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/gviegas/quater/internal/ftoa"
)

const prefix = "linear: "

// ErrInvalidArg is the error returned when an argument
// is not valid for the operation.
// Callers should test for it using errors.Is.
var ErrInvalidArg = errors.New(prefix + "invalid argument")

// Epsilon is the default tolerance of RoughlyEqQ.
const Epsilon = 1e-11

// Squared distance below which EqQ considers two
// quaternions equal (i.e., 1 / math.MaxFloat32).
const eqThreshold = 1 / math.MaxFloat32

// Q is a quaternion of float32.
// W is the scalar part and X, Y, Z are the i, j, k
// components of the vector part.
// The zero value is the zero quaternion.
type Q struct {
	W, X, Y, Z float32
}

// Make returns the quaternion w + xi + yj + zk.
func Make(w, x, y, z float32) Q { return Q{w, x, y, z} }

// MakeInt is like Make but takes integer components.
func MakeInt(w, x, y, z int) Q {
	return Q{float32(w), float32(x), float32(y), float32(z)}
}

// Ident returns the identity quaternion.
func Ident() Q { return Q{W: 1} }

// Config describes the components of a new quaternion.
// Fields that are not set default to 0.
type Config struct {
	W, X, Y, Z float32
}

// New creates a quaternion from c.
func New(c Config) Q { return Q{c.W, c.X, c.Y, c.Z} }

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{W: 1} }

func (q Q) v4() V4 { return V4{q.W, q.X, q.Y, q.Z} }

func fromV4(v V4) Q { return Q{v[0], v[1], v[2], v[3]} }

// AddQ returns q + p.
func AddQ(q, p Q) Q { return fromV4(AddV4(q.v4(), p.v4())) }

// SubQ returns q - p.
func SubQ(q, p Q) Q { return fromV4(SubV4(q.v4(), p.v4())) }

// NegQ returns -q.
func NegQ(q Q) Q { return Q{-q.W, -q.X, -q.Y, -q.Z} }

// ScaleQ returns s ⋅ q.
func ScaleQ(s float32, q Q) Q { return fromV4(ScaleV4(s, q.v4())) }

// MulQ returns the Hamilton product l ⋅ r.
func MulQ(l, r Q) (q Q) {
	q.Mul(&l, &r)
	return
}

// DivQ returns l ⋅ r⁻¹.
// If r has zero length, the result contains
// infinities and/or NaNs.
func DivQ(l, r Q) Q { return MulQ(l, InvertQ(r)) }

// DotQ returns q ⋅ p.
func DotQ(q, p Q) float32 { return DotV4(q.v4(), p.v4()) }

// ConjQ returns the conjugate of q.
func ConjQ(q Q) Q { return Q{q.W, -q.X, -q.Y, -q.Z} }

// SqLenQ returns the squared length of q.
func SqLenQ(q Q) float32 { return DotQ(q, q) }

// LenQ returns the length of q.
func LenQ(q Q) float32 { return math32.Sqrt(SqLenQ(q)) }

// InvertQ returns the inverse of q.
// If q has zero length, the result contains
// infinities and/or NaNs.
func InvertQ(q Q) Q { return ScaleQ(1/SqLenQ(q), ConjQ(q)) }

// NormQ returns q normalized.
// If q has zero length, it returns the identity
// quaternion instead.
func NormQ(q Q) Q {
	l := LenQ(q)
	if l == 0 {
		return Ident()
	}
	return ScaleQ(1/l, q)
}

// EqQ reports whether q and p are equal.
// The comparison is not bitwise: the squared length
// of q - p must be less than 1 / math.MaxFloat32.
// Quaternions containing NaNs are never equal.
func EqQ(q, p Q) bool { return SqLenQ(SubQ(q, p)) < eqThreshold }

// RoughlyEqQ is like ApproxQ with Epsilon as tolerance.
func RoughlyEqQ(q, p Q) bool { return ApproxQ(q, p, Epsilon) }

// ApproxQ reports whether the squared length
// of q - p is less than eps.
func ApproxQ(q, p Q, eps float32) bool { return SqLenQ(SubQ(q, p)) < eps }

// Add sets q to contain l + r.
func (q *Q) Add(l, r *Q) {
	q.W = l.W + r.W
	q.X = l.X + r.X
	q.Y = l.Y + r.Y
	q.Z = l.Z + r.Z
}

// Sub sets q to contain l - r.
func (q *Q) Sub(l, r *Q) {
	q.W = l.W - r.W
	q.X = l.X - r.X
	q.Y = l.Y - r.Y
	q.Z = l.Z - r.Z
}

// Neg sets q to contain -p.
func (q *Q) Neg(p *Q) { *q = Q{-p.W, -p.X, -p.Y, -p.Z} }

// Scale sets q to contain s ⋅ p.
func (q *Q) Scale(s float32, p *Q) {
	q.W = p.W * s
	q.X = p.X * s
	q.Y = p.Y * s
	q.Z = p.Z * s
}

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	w := l.W*r.W - l.X*r.X - l.Y*r.Y - l.Z*r.Z
	x := l.W*r.X + l.X*r.W + l.Y*r.Z - l.Z*r.Y
	y := l.W*r.Y - l.X*r.Z + l.Y*r.W + l.Z*r.X
	z := l.W*r.Z + l.X*r.Y - l.Y*r.X + l.Z*r.W
	*q = Q{w, x, y, z}
}

// Div sets q to contain l ⋅ r⁻¹.
func (q *Q) Div(l, r *Q) {
	var i Q
	i.Invert(r)
	q.Mul(l, &i)
}

// Conj sets q to contain the conjugate of p.
func (q *Q) Conj(p *Q) { *q = Q{p.W, -p.X, -p.Y, -p.Z} }

// Invert sets q to contain the inverse of p.
// If p has zero length, q will contain
// infinities and/or NaNs.
func (q *Q) Invert(p *Q) {
	q.Scale(1/SqLenQ(*p), p)
	q.Conj(q)
}

// Norm sets q to contain p normalized.
// It fails with ErrInvalidArg if p has zero length,
// in which case q is not modified.
func (q *Q) Norm(p *Q) error {
	l := LenQ(*p)
	if l == 0 {
		return fmt.Errorf("%w: cannot normalize zero-length quaternion", ErrInvalidArg)
	}
	q.Scale(1/l, p)
	return nil
}

// String returns the text representation of q.
func (q Q) String() string {
	return "Quaternion { w: " + ftoa.Format(q.W) +
		", x: " + ftoa.Format(q.X) +
		", y: " + ftoa.Format(q.Y) +
		", z: " + ftoa.Format(q.Z) + " }"
}

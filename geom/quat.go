// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "github.com/chewxy/math32"

// Quat is a rotation quaternion with scalar part W.
// The zero value is not a valid rotation; use QuatIdentity.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normalized()
	if a.IsZero() {
		return QuatIdentity()
	}
	s := math32.Sin(angle / 2)
	return Quat{
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
		W: math32.Cos(angle / 2),
	}
}

// QuatBetween returns the shortest rotation taking direction `from`
// onto direction `to`. Inputs do not need to be normalized.
func QuatBetween(from, to Vec3) Quat {
	f := from.Normalized()
	t := to.Normalized()
	if f.IsZero() || t.IsZero() {
		return QuatIdentity()
	}
	d := f.Dot(t)
	if d < -0.999999 {
		// Opposite directions: rotate half a turn around any perpendicular.
		perp := Vec3{X: 1}.Cross(f)
		if perp.NormSq() < 1e-8 {
			perp = Vec3{Y: 1}.Cross(f)
		}
		return QuatFromAxisAngle(perp, math32.Pi)
	}
	c := f.Cross(t)
	return Quat{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalized()
}

// QuatFromMat3 extracts the rotation from a row-major 3x3 rotation matrix.
func QuatFromMat3(m Mat3) Quat {
	tr := m[0] + m[4] + m[8]
	var q Quat
	switch {
	case tr > 0:
		s := math32.Sqrt(tr+1) * 2
		q.W = s / 4
		q.X = (m[7] - m[5]) / s
		q.Y = (m[2] - m[6]) / s
		q.Z = (m[3] - m[1]) / s
	case m[0] >= m[4] && m[0] >= m[8]:
		s := math32.Sqrt(1+m[0]-m[4]-m[8]) * 2
		q.W = (m[7] - m[5]) / s
		q.X = s / 4
		q.Y = (m[1] + m[3]) / s
		q.Z = (m[2] + m[6]) / s
	case m[4] > m[8]:
		s := math32.Sqrt(1+m[4]-m[0]-m[8]) * 2
		q.W = (m[2] - m[6]) / s
		q.X = (m[1] + m[3]) / s
		q.Y = s / 4
		q.Z = (m[5] + m[7]) / s
	default:
		s := math32.Sqrt(1+m[8]-m[0]-m[4]) * 2
		q.W = (m[3] - m[1]) / s
		q.X = (m[2] + m[6]) / s
		q.Y = (m[5] + m[7]) / s
		q.Z = s / 4
	}
	return q.Normalized()
}

// Mul returns the composed rotation q then r applied in r-first order,
// following the usual quaternion product q*r.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Normalized returns the unit quaternion in the same orientation.
// Returns the identity if the quaternion is zero.
func (q Quat) Normalized() Quat {
	n := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return QuatIdentity()
	}
	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Mul(2 * q.W)).Add(uuv.Mul(2))
}

// Approx returns true if two quaternions represent nearly the same
// orientation (q and -q compare equal).
func (q Quat) Approx(r Quat, epsilon float32) bool {
	d := q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
	return math32.Abs(math32.Abs(d)-1) < epsilon
}

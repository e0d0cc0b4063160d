// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "github.com/chewxy/math32"

// Mat3 is a row-major 3x3 matrix.
type Mat3 [9]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Col returns column i as a vector.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{X: m[i], Y: m[3+i], Z: m[6+i]}
}

// Det returns the determinant.
func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// SymEigen diagonalizes a symmetric matrix by cyclic Jacobi rotations.
// It returns the eigenvalues sorted in descending order and a proper
// rotation matrix whose columns are the matching eigenvectors.
func SymEigen(m Mat3) (Vec3, Mat3) {
	a := m
	v := Identity3()

	for sweep := 0; sweep < 16; sweep++ {
		off := a[1]*a[1] + a[2]*a[2] + a[5]*a[5]
		if off < 1e-12 {
			break
		}
		for _, pq := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
			p, q := pq[0], pq[1]
			apq := a[3*p+q]
			if math32.Abs(apq) < 1e-12 {
				continue
			}
			app := a[3*p+p]
			aqq := a[3*q+q]
			theta := (aqq - app) / (2 * apq)
			t := 1 / (math32.Abs(theta) + math32.Sqrt(theta*theta+1))
			if theta < 0 {
				t = -t
			}
			c := 1 / math32.Sqrt(t*t+1)
			s := t * c
			rotate := func(mat *Mat3, i, j, k, l int) {
				g := mat[3*i+j]
				h := mat[3*k+l]
				mat[3*i+j] = c*g - s*h
				mat[3*k+l] = s*g + c*h
			}
			a[3*p+p] = app - t*apq
			a[3*q+q] = aqq + t*apq
			a[3*p+q] = 0
			a[3*q+p] = 0
			for r := 0; r < 3; r++ {
				if r != p && r != q {
					g := a[3*r+p]
					h := a[3*r+q]
					a[3*r+p] = c*g - s*h
					a[3*r+q] = s*g + c*h
					a[3*p+r] = a[3*r+p]
					a[3*q+r] = a[3*r+q]
				}
			}
			for r := 0; r < 3; r++ {
				rotate(&v, r, p, r, q)
			}
		}
	}

	vals := [3]float32{a[0], a[4], a[8]}
	order := [3]int{0, 1, 2}
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			if vals[order[j]] > vals[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	var vecs Mat3
	for dst, src := range order {
		col := v.Col(src)
		vecs[dst] = col.X
		vecs[3+dst] = col.Y
		vecs[6+dst] = col.Z
	}
	// Keep the basis right-handed so it forms a proper rotation.
	if vecs.Det() < 0 {
		vecs[2] = -vecs[2]
		vecs[5] = -vecs[5]
		vecs[8] = -vecs[8]
	}
	return Vec3{X: vals[order[0]], Y: vals[order[1]], Z: vals[order[2]]}, vecs
}

// SPDX-License-Identifier: MIT
// Package: eigen
//
// rotation.go: closed-form Jacobi rotation and its in-place application.
//
// Convention:
//   - The n×n rotation R equals the identity except R_ii = R_jj = cos,
//     R_ij = sin, R_ji = −sin.
//   - With x = −2·a_ij and y = a_ii − a_jj the angle satisfies tan 2θ = x/y,
//     so the (i,j) entry of Rᵗ·A·R vanishes.
//
// Numerical notes:
//   - cos is taken from √((1+|y|/d)/2) ≥ 1/√2, so the division in sin never
//     approaches zero; hypot avoids overflow in d.
//   - |y| below machine epsilon means a_ii ≈ a_jj: the angle is π/4 exactly
//     and the rotation is marked Degenerate. This is not an error.

package eigen

import (
	"math"

	"github.com/katalvlaran/jacobi/matrix"
)

// MachineEpsilon is the float64 spacing at 1.0 (2⁻⁵²).
const MachineEpsilon = 2.220446049250313e-16

// Rotation is a plane rotation acting on rows/columns Pivot.I and Pivot.J.
// Cos² + Sin² = 1 within rounding.
type Rotation struct {
	Pivot      Pivot
	Cos, Sin   float64
	Degenerate bool // π/4 fallback taken because a_ii ≈ a_jj
}

// BuildRotation computes the rotation annihilating a_ij for pivot p.
// Pure: a is only read. The caller guarantees p is in range and I ≠ J.
//
// Implementation:
//   - x = −2·a_ij, y = a_ii − a_jj.
//   - |y| < MachineEpsilon: cos = sin = 1/√2, Degenerate = true.
//   - otherwise d = hypot(x, y), cos = √((1+|y|/d)/2),
//     sin = sign(x·y)·|x|/(2·cos·d).
//
// Complexity: O(1).
func BuildRotation(p Pivot, a *matrix.Dense) Rotation {
	rowI := a.RawRowView(p.I)
	aij := rowI[p.J]
	aii := rowI[p.I]
	ajj := a.RawRowView(p.J)[p.J]

	x := -2 * aij
	y := aii - ajj
	if math.Abs(y) < MachineEpsilon {
		return Rotation{Pivot: p, Cos: math.Sqrt2 / 2, Sin: math.Sqrt2 / 2, Degenerate: true}
	}

	d := math.Hypot(x, y)
	c := math.Sqrt((1 + math.Abs(y)/d) / 2)
	s := math.Abs(x) / (2 * c * d)
	if x*y < 0 {
		s = -s
	}

	return Rotation{Pivot: p, Cos: c, Sin: s}
}

// Embed materializes the rotation as an n×n matrix (identity outside the
// pivot plane). Used for verification and diagnostics; Solve never builds it.
// Errors: ErrInvalidInput when the pivot does not fit n.
// Complexity: O(n²).
func (r Rotation) Embed(n int) (*matrix.Dense, error) {
	i, j := r.Pivot.I, r.Pivot.J
	if i < 0 || j < 0 || i >= n || j >= n || i == j {
		return nil, eigenErrorf(opEmbed, ErrInvalidInput, "pivot %v outside %d×%d", r.Pivot, n, n)
	}
	R, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, invalidInput(opEmbed, err)
	}
	R.RawRowView(i)[i] = r.Cos
	R.RawRowView(j)[j] = r.Cos
	R.RawRowView(i)[j] = r.Sin
	R.RawRowView(j)[i] = -r.Sin

	return R, nil
}

// applySimilarity replaces a with Rᵗ·a·R in place, touching only rows and
// columns I and J. Symmetry is kept by mirroring every updated entry.
// The new a_ij is computed from the formula, not forced to zero, so the
// result is the rounded product itself.
// Complexity: O(n).
func applySimilarity(a *matrix.Dense, r Rotation) {
	i, j := r.Pivot.I, r.Pivot.J
	c, s := r.Cos, r.Sin
	rowI, rowJ := a.RawRowView(i), a.RawRowView(j)
	aii, ajj, aij := rowI[i], rowJ[j], rowI[j]

	var k int
	var aki, akj float64
	var rowK []float64
	for k = 0; k < len(rowI); k++ {
		if k == i || k == j {
			continue
		}
		rowK = a.RawRowView(k)
		aki, akj = rowK[i], rowK[j]
		rowK[i] = c*aki - s*akj
		rowK[j] = s*aki + c*akj
		rowI[k] = rowK[i]
		rowJ[k] = rowK[j]
	}

	cs := c * s
	rowI[i] = c*c*aii - 2*cs*aij + s*s*ajj
	rowJ[j] = s*s*aii + 2*cs*aij + c*c*ajj
	rowI[j] = cs*(aii-ajj) + (c*c-s*s)*aij
	rowJ[i] = rowI[j]
}

// accumulate replaces v with v·R, so the columns of v converge to the
// eigenvectors of the original matrix.
// Complexity: O(n).
func accumulate(v *matrix.Dense, r Rotation) {
	i, j := r.Pivot.I, r.Pivot.J
	c, s := r.Cos, r.Sin
	var row []float64
	var vki, vkj float64
	for k := 0; k < v.Rows(); k++ {
		row = v.RawRowView(k)
		vki, vkj = row[i], row[j]
		row[i] = c*vki - s*vkj
		row[j] = s*vki + c*vkj
	}
}

// SPDX-License-Identifier: MIT

package eigen

import "fmt"

// Pivot addresses the off-diagonal entry a_ij a rotation annihilates.
// I ≠ J and both lie in [0, n). Either index may be the larger one.
type Pivot struct {
	I, J int
}

// String renders the pivot as "(i,j)".
func (p Pivot) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

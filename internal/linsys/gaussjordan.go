package linsys

import "math"

const (
	// PivotTolerance is the smallest pivot magnitude accepted during elimination.
	// Columns whose best remaining candidate falls below it are skipped.
	PivotTolerance = 1e-12

	// UnitTolerance is how close an entry must be to 1.0 to be read back as
	// the leading coefficient of a reduced row.
	UnitTolerance = 1e-10
)

// Solution holds the recovered unknowns of A·x = b together with
// elimination diagnostics
type Solution struct {
	// X has one entry per column of A. Unknowns that never received a
	// pivot are 0.
	X []float64

	// Rank is the number of pivots found (rows consumed)
	Rank int

	// PivotColumns lists the column of each pivot in elimination order
	PivotColumns []int

	// Residual is the largest |rhs| left in rows that received no pivot.
	// A non-zero residual means the equations could not all be satisfied.
	Residual float64
}

// Free reports the columns that never received a pivot
func (s Solution) Free() []int {
	pivoted := make(map[int]bool, len(s.PivotColumns))
	for _, c := range s.PivotColumns {
		pivoted[c] = true
	}

	var free []int
	for c := range s.X {
		if !pivoted[c] {
			free = append(free, c)
		}
	}
	return free
}

// Solve reduces the augmented system [A | b] by Gauss-Jordan elimination
// with partial pivoting. A may be non-square and rank deficient; Solve
// never fails and always returns len(A[0]) unknowns. The inputs are not
// modified.
func Solve(a [][]float64, b []float64) Solution {
	n := len(a)
	m := 0
	if n > 0 {
		m = len(a[0])
	}

	sol := Solution{X: make([]float64, m)}
	if n == 0 || m == 0 {
		for i := 0; i < n && i < len(b); i++ {
			sol.Residual = math.Max(sol.Residual, math.Abs(b[i]))
		}
		return sol
	}

	// Augmented copy
	mat := make([][]float64, n)
	for i := range a {
		mat[i] = make([]float64, m+1)
		copy(mat[i], a[i])
		if i < len(b) {
			mat[i][m] = b[i]
		}
	}

	row := 0
	for col := 0; col < m && row < n; col++ {
		// Partial pivoting: strict comparison keeps the lowest row on ties
		sel := row
		for i := row + 1; i < n; i++ {
			if math.Abs(mat[i][col]) > math.Abs(mat[sel][col]) {
				sel = i
			}
		}
		if math.Abs(mat[sel][col]) < PivotTolerance {
			continue
		}
		mat[sel], mat[row] = mat[row], mat[sel]

		div := mat[row][col]
		for j := col; j <= m; j++ {
			mat[row][j] /= div
		}

		for i := 0; i < n; i++ {
			if i == row {
				continue
			}
			mul := mat[i][col]
			for j := col; j <= m; j++ {
				mat[i][j] -= mat[row][j] * mul
			}
		}

		sol.PivotColumns = append(sol.PivotColumns, col)
		row++
	}
	sol.Rank = row

	for i := 0; i < n; i++ {
		pivot := -1
		for j := 0; j < m; j++ {
			if math.Abs(mat[i][j]-1.0) < UnitTolerance {
				pivot = j
				break
			}
		}
		if pivot == -1 {
			continue
		}
		sol.X[pivot] = mat[i][m]
	}

	for i := row; i < n; i++ {
		sol.Residual = math.Max(sol.Residual, math.Abs(mat[i][m]))
	}

	return sol
}

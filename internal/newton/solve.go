package newton

import (
	"math"

	"github.com/pkg/errors"
)

// SingularThreshold is the pivot magnitude below which a system is treated
// as singular.
const SingularThreshold = 1e-8

// ErrSingular is returned when a linear system has no unique solution.
var ErrSingular = errors.New("singular matrix")

// Solve solves a·x = b by Gaussian elimination with partial pivoting.
// a must be square with len(b) rows. Neither argument is modified.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, errors.Errorf("matrix has %d rows, vector has %d elements", len(a), n)
	}

	// Augmented copy [a | b].
	m := make([][]float64, n)
	for i := range a {
		if len(a[i]) != n {
			return nil, errors.Errorf("row %d has %d columns, want %d", i, len(a[i]), n)
		}
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < SingularThreshold {
			return nil, errors.Wrapf(ErrSingular, "pivot %d", col)
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for c := i + 1; c < n; c++ {
			sum -= m[i][c] * x[c]
		}
		x[i] = sum / m[i][i]
	}
	return x, nil
}

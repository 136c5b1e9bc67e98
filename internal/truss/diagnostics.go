package truss

import (
	"math"

	"github.com/alexiusacademia/gotruss/internal/linsys"
)

// ResidualTolerance is the largest unsatisfied right-hand side, relative to
// the largest load (or absolute below unit loads), still treated as
// equilibrium when classifying a solve.
const ResidualTolerance = 1e-9

// Determinacy is an after-the-fact reading of the elimination. It never
// influences the computed values.
type Determinacy int

const (
	// Determinate: every unknown received a pivot and all equations hold
	Determinate Determinacy = iota
	// Indeterminate: some unknowns never received a pivot and were set to 0;
	// their values (and those coupled to them) depend on pivot order
	Indeterminate
	// Unstable: some equilibrium equations could not be satisfied
	Unstable
)

func (d Determinacy) String() string {
	switch d {
	case Indeterminate:
		return "indeterminate"
	case Unstable:
		return "unstable"
	default:
		return "determinate"
	}
}

// Diagnostics describes how the equilibrium system was solved
type Diagnostics struct {
	Equations int
	Unknowns  int
	Rank      int
	Residual  float64

	// Tolerance is the residual bound used by Determinacy:
	// ResidualTolerance scaled by max(1, max|b|)
	Tolerance float64

	// NonFinite is set when a coefficient or load is NaN or infinite.
	// Such a system cannot be classified from rank and residual.
	NonFinite bool

	// FreeUnknowns are system columns that received no pivot
	FreeUnknowns []int

	SkippedMembers    []int
	DegenerateMembers []int
}

func newDiagnostics(sys System, sol linsys.Solution) Diagnostics {
	d := Diagnostics{
		Equations:         sys.Equations(),
		Unknowns:          sys.Unknowns(),
		Rank:              sol.Rank,
		Residual:          sol.Residual,
		SkippedMembers:    sys.Skipped,
		DegenerateMembers: sys.Degenerate,
	}

	scale := 1.0
	for i, bi := range sys.B {
		if math.IsNaN(bi) || math.IsInf(bi, 0) {
			d.NonFinite = true
		} else {
			scale = math.Max(scale, math.Abs(bi))
		}
		for _, v := range sys.A[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				d.NonFinite = true
			}
		}
	}
	d.Tolerance = ResidualTolerance * scale

	pivoted := make(map[int]bool, len(sol.PivotColumns))
	for _, c := range sol.PivotColumns {
		pivoted[c] = true
	}
	for c := 0; c < sys.Unknowns(); c++ {
		if !pivoted[c] {
			d.FreeUnknowns = append(d.FreeUnknowns, c)
		}
	}

	return d
}

// Determinacy classifies the solve from its rank and residual. Non-finite
// input is reported as Unstable.
func (d Diagnostics) Determinacy() Determinacy {
	tol := d.Tolerance
	if tol <= 0 {
		tol = ResidualTolerance
	}
	switch {
	case d.NonFinite, math.IsNaN(d.Residual), d.Residual > tol:
		return Unstable
	case len(d.FreeUnknowns) > 0:
		return Indeterminate
	default:
		return Determinate
	}
}

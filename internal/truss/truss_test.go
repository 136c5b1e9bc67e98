package truss

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gotruss/internal/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// sumForces returns the resultant of reactions plus applied loads
func sumForces(m Model, res *Result) (float64, float64) {
	var sx, sy float64
	for _, n := range m.Nodes {
		sx += n.Fx
		sy += n.Fy
		if rc, ok := res.Reaction(n.ID); ok {
			sx += rc.XOrZero()
			sy += rc.YOrZero()
		}
	}
	return sx, sy
}

func triangle(fy float64) Model {
	return NewModel(
		[]Node{
			{X: 0, Y: 0, Support: SupportPin},
			{X: 4, Y: 0, Support: SupportRollerY},
			{X: 2, Y: 2, Fy: fy},
		},
		[]Member{{0, 1}, {1, 2}, {0, 2}},
	)
}

func TestParseSupport(t *testing.T) {
	cases := map[string]Support{
		"pin":        SupportPin,
		"PIN":        SupportPin,
		"  Pinned  ": SupportPin,
		"rollerX":    SupportRollerX,
		"RollerY":    SupportRollerY,
		"rollerxy":   SupportRollerX,
		"pinrollery": SupportPin,
		"roller":     SupportNone,
		"":           SupportNone,
		"fixed":      SupportNone,
	}
	for label, want := range cases {
		assert.Equal(t, want, ParseSupport(label), "label %q", label)
	}
}

func TestSupportString(t *testing.T) {
	for _, s := range []Support{SupportNone, SupportPin, SupportRollerX, SupportRollerY} {
		assert.Equal(t, s, ParseSupport(s.String()))
	}
}

func TestNewModel_AssignsIDs(t *testing.T) {
	nodes := []Node{{ID: 7}, {ID: 3}, {ID: 9}}
	m := NewModel(nodes, nil)
	for i, n := range m.Nodes {
		assert.Equal(t, i, n.ID)
	}
	// caller's slice is left alone
	assert.Equal(t, 7, nodes[0].ID)
}

func TestClassify(t *testing.T) {
	m := NewModel([]Node{
		{Support: SupportRollerY},
		{Support: SupportPin},
		{Support: SupportNone},
		{Support: SupportRollerX},
	}, nil)

	d := Classify(m.Nodes)
	assert.Equal(t, 4, d.Count())
	assert.Equal(t, []DOF{
		{NodeID: 0, Axis: AxisY},
		{NodeID: 1, Axis: AxisX},
		{NodeID: 1, Axis: AxisY},
		{NodeID: 3, Axis: AxisX},
	}, d.Owners)
	assert.Equal(t, map[int]int{1: 1, 3: 3}, d.X)
	assert.Equal(t, map[int]int{0: 0, 1: 2}, d.Y)
}

func TestAssemble_Layout(t *testing.T) {
	m := NewModel(
		[]Node{
			{X: 0, Y: 0, Support: SupportPin},
			{X: 3, Y: 0, Support: SupportRollerY, Fx: -6},
		},
		[]Member{{0, 1}},
	)
	sys := Assemble(m, Classify(m.Nodes))

	assert.Equal(t, 4, sys.Equations())
	assert.Equal(t, 4, sys.Unknowns())
	assert.Equal(t, 3, sys.ReactionCount)
	assert.Equal(t, [][]float64{
		{1, 0, 0, 1},
		{0, 1, 0, 0},
		{0, 0, 0, -1},
		{0, 0, 1, 0},
	}, sys.A)
	assert.Equal(t, []float64{0, 0, 6, 0}, sys.B)
	assert.Empty(t, sys.Skipped)
	assert.Empty(t, sys.Degenerate)
}

func TestAssemble_InclinedMember(t *testing.T) {
	m := NewModel([]Node{{X: 0, Y: 0}, {X: 3, Y: 4}}, []Member{{0, 1}})
	sys := Assemble(m, Classify(m.Nodes))

	require.Equal(t, 1, sys.Unknowns())
	assert.InDelta(t, 0.6, sys.A[0][0], tol)
	assert.InDelta(t, 0.8, sys.A[1][0], tol)
	assert.InDelta(t, -0.6, sys.A[2][0], tol)
	assert.InDelta(t, -0.8, sys.A[3][0], tol)
}

func TestAssemble_DropsBadReferences(t *testing.T) {
	m := NewModel(
		[]Node{{X: 0, Y: 0, Support: SupportPin}, {X: 1, Y: 0}},
		[]Member{{0, 5}, {-1, 1}, {0, 1}},
	)
	sys := Assemble(m, Classify(m.Nodes))

	assert.Equal(t, []int{0, 1}, sys.Skipped)
	assert.Equal(t, 2+3, sys.Unknowns())
	for _, row := range sys.A {
		assert.Zero(t, row[sys.MemberColumn(0)])
		assert.Zero(t, row[sys.MemberColumn(1)])
	}
	assert.Equal(t, 1.0, sys.A[0][sys.MemberColumn(2)])
}

func TestSolve_ScenarioA_SinglePinnedNode(t *testing.T) {
	m := NewModel([]Node{{X: 0, Y: 0, Support: ParseSupport("pin"), Fx: 5, Fy: -3}}, nil)
	res := Solve(m)

	rc, ok := res.Reaction(0)
	require.True(t, ok)
	require.True(t, rc.HasX())
	require.True(t, rc.HasY())
	assert.InDelta(t, -5.0, *rc.X, tol)
	assert.InDelta(t, 3.0, *rc.Y, tol)
	assert.Empty(t, res.MemberForces)
	assert.Equal(t, Determinate, res.Diagnostics.Determinacy())
}

func TestSolve_ScenarioB_PinAndRoller(t *testing.T) {
	m := NewModel(
		[]Node{
			{X: 0, Y: 0, Support: ParseSupport("pin")},
			{X: 3, Y: 0, Support: ParseSupport("rollery"), Fx: -6},
		},
		[]Member{{0, 1}},
	)
	res := Solve(m)

	require.Len(t, res.MemberForces, 1)
	assert.InDelta(t, -6.0, res.MemberForces[0], tol)

	r0, ok := res.Reaction(0)
	require.True(t, ok)
	assert.InDelta(t, 6.0, *r0.X, tol)
	assert.InDelta(t, 0.0, *r0.Y, tol)

	r1, ok := res.Reaction(1)
	require.True(t, ok)
	assert.False(t, r1.HasX())
	require.True(t, r1.HasY())
	assert.InDelta(t, 0.0, *r1.Y, tol)

	sx, sy := sumForces(m, res)
	assert.InDelta(t, 0, sx, 1e-6)
	assert.InDelta(t, 0, sy, 1e-6)
}

func TestSolve_Triangle(t *testing.T) {
	m := triangle(-10)
	res := Solve(m)

	r0, _ := res.Reaction(0)
	r1, _ := res.Reaction(1)
	assert.InDelta(t, 0, *r0.X, tol)
	assert.InDelta(t, 5, *r0.Y, tol)
	assert.InDelta(t, 5, *r1.Y, tol)

	assert.InDelta(t, 5, res.MemberForces[0], tol)
	assert.InDelta(t, -5*math.Sqrt2, res.MemberForces[1], tol)
	assert.InDelta(t, -5*math.Sqrt2, res.MemberForces[2], tol)

	d := res.Diagnostics
	assert.Equal(t, 6, d.Equations)
	assert.Equal(t, 6, d.Unknowns)
	assert.Equal(t, 6, d.Rank)
	assert.Equal(t, Determinate, d.Determinacy())
}

func TestSolve_ZeroLoad(t *testing.T) {
	res := Solve(triangle(0))
	for id, rc := range res.Reactions {
		assert.InDelta(t, 0, rc.XOrZero(), tol, "node %d", id)
		assert.InDelta(t, 0, rc.YOrZero(), tol, "node %d", id)
	}
	for i, f := range res.MemberForces {
		assert.InDelta(t, 0, f, tol, "member %d", i)
	}
}

func TestSolve_DegenerateMember(t *testing.T) {
	m := NewModel(
		[]Node{
			{X: 0, Y: 0, Support: SupportPin},
			{X: 2, Y: 0, Support: SupportRollerY, Fx: 4},
		},
		[]Member{{0, 1}, {1, 1}},
	)
	res := Solve(m)

	require.Len(t, res.MemberForces, 2)
	assert.InDelta(t, 4, res.MemberForces[0], tol)
	assert.Equal(t, 0.0, res.MemberForces[1])
	assert.Equal(t, []int{1}, res.Diagnostics.DegenerateMembers)
	assert.Contains(t, res.Diagnostics.FreeUnknowns, 4)
}

func TestSolve_CoincidentNodes(t *testing.T) {
	m := NewModel(
		[]Node{{X: 1, Y: 1, Support: SupportPin}, {X: 1, Y: 1}},
		[]Member{{0, 1}},
	)
	res := Solve(m)
	assert.Equal(t, 0.0, res.MemberForces[0])
	assert.Equal(t, []int{0}, res.Diagnostics.DegenerateMembers)
}

func TestSolve_SkippedMemberResolvesToZero(t *testing.T) {
	m := NewModel([]Node{{Support: SupportPin, Fy: -2}}, []Member{{0, 3}})
	res := Solve(m)
	require.Len(t, res.MemberForces, 1)
	assert.Equal(t, 0.0, res.MemberForces[0])
	assert.Equal(t, []int{0}, res.Diagnostics.SkippedMembers)
	r0, _ := res.Reaction(0)
	assert.InDelta(t, 2, *r0.Y, tol)
}

func TestSolve_Indeterminate(t *testing.T) {
	m := NewModel(
		[]Node{
			{X: 0, Y: 0, Support: SupportPin},
			{X: 3, Y: 0, Support: SupportPin, Fx: 10},
		},
		[]Member{{0, 1}},
	)
	res := Solve(m)

	d := res.Diagnostics
	assert.Equal(t, 4, d.Rank)
	assert.Equal(t, 5, d.Unknowns)
	assert.Equal(t, []int{4}, d.FreeUnknowns)
	assert.Equal(t, Indeterminate, d.Determinacy())

	// The free member force is parked at 0 and node 1 takes the whole load
	assert.Equal(t, 0.0, res.MemberForces[0])
	r1, _ := res.Reaction(1)
	assert.InDelta(t, -10, *r1.X, tol)

	sx, sy := sumForces(m, res)
	assert.InDelta(t, 0, sx, 1e-6)
	assert.InDelta(t, 0, sy, 1e-6)
}

func TestSolve_Unstable(t *testing.T) {
	m := NewModel([]Node{{X: 0, Y: 0, Fx: 5}}, nil)
	res := Solve(m)
	assert.Empty(t, res.Reactions)
	assert.Equal(t, Unstable, res.Diagnostics.Determinacy())
	assert.InDelta(t, 5, res.Diagnostics.Residual, tol)
}

func TestSolve_Empty(t *testing.T) {
	res := Solve(NewModel(nil, []Member{{0, 1}}))
	assert.Empty(t, res.Reactions)
	assert.Equal(t, []float64{0}, res.MemberForces)
	assert.Equal(t, []int{0}, res.Diagnostics.SkippedMembers)
}

func TestSolve_FreshResults(t *testing.T) {
	m := triangle(-10)
	first := Solve(m)
	second := Solve(m)
	assert.Equal(t, first, second)

	first.MemberForces[0] = 99
	assert.NotEqual(t, 99.0, second.MemberForces[0])
}

func TestAnalyze(t *testing.T) {
	a := Analyze(triangle(-10))
	assert.Len(t, a.Nodes(), 3)
	assert.Len(t, a.Members(), 3)

	n, ok := a.Node(2)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Y)
	_, ok = a.Node(3)
	assert.False(t, ok)

	_, ok = a.Reaction(2)
	assert.False(t, ok)
	assert.InDelta(t, 5, a.MemberForce(0), tol)
}

func TestSolve_NonFiniteInputIsUnstable(t *testing.T) {
	m := triangle(-10)
	m.Nodes[2].X = math.NaN()
	res := Solve(m)

	d := res.Diagnostics
	assert.True(t, d.NonFinite)
	assert.Equal(t, Unstable, d.Determinacy())
	assert.Len(t, res.MemberForces, 3)

	m = triangle(math.Inf(-1))
	assert.True(t, Solve(m).Diagnostics.NonFinite)

	assert.False(t, Solve(triangle(-10)).Diagnostics.NonFinite)
}

func TestDiagnostics_ToleranceScalesWithLoad(t *testing.T) {
	sys := System{
		A:       [][]float64{{1}, {1}},
		B:       []float64{2e8, -3e8},
		Columns: 1,
	}
	sol := linsys.Solution{X: []float64{2e8}, Rank: 1, PivotColumns: []int{0}, Residual: 1e-2}

	d := newDiagnostics(sys, sol)
	assert.InDelta(t, 0.3, d.Tolerance, 1e-12)
	assert.Equal(t, Determinate, d.Determinacy())

	sys.B = []float64{0.5, -0.25}
	d = newDiagnostics(sys, sol)
	assert.Equal(t, ResidualTolerance, d.Tolerance)
	assert.Equal(t, Unstable, d.Determinacy())

	// zero value falls back to the absolute tolerance
	assert.Equal(t, Unstable, Diagnostics{Residual: 1e-6}.Determinacy())
	assert.Equal(t, Unstable, Diagnostics{Residual: math.NaN()}.Determinacy())
}

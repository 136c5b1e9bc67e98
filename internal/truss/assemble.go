package truss

import "math"

// MinLength is the shortest member that still contributes equilibrium terms
const MinLength = 1e-12

// System is the global equilibrium system A·x = b of a model.
//
// Rows 2i and 2i+1 are the x and y equilibrium of the node at position i.
// Columns 0..ReactionCount-1 are reactions in DOF order, the remaining
// columns are member forces in member order.
type System struct {
	A             [][]float64
	B             []float64
	ReactionCount int
	Columns       int

	Skipped    []int // members referencing a missing node
	Degenerate []int // members shorter than MinLength
}

// Equations is the number of rows of the system
func (s System) Equations() int {
	return len(s.A)
}

// Unknowns is the number of columns of the system
func (s System) Unknowns() int {
	return s.Columns
}

// MemberColumn returns the column of the i-th member's axial force
func (s System) MemberColumn(i int) int {
	return s.ReactionCount + i
}

// Assemble builds the equilibrium system of m using the reaction numbering
// in dofs. A unit tensile force in a member pulls each end node toward the
// other, so the start node gets +cos/+sin and the end node -cos/-sin.
// Applied loads move to the right-hand side with their sign flipped.
func Assemble(m Model, dofs DOFMap) System {
	rows := 2 * len(m.Nodes)
	cols := dofs.Count() + len(m.Members)

	sys := System{
		A:             make([][]float64, rows),
		B:             make([]float64, rows),
		ReactionCount: dofs.Count(),
		Columns:       cols,
	}
	for i := range sys.A {
		sys.A[i] = make([]float64, cols)
	}

	// Reactions
	for i, n := range m.Nodes {
		if c, ok := dofs.X[n.ID]; ok {
			sys.A[2*i][c] = 1.0
		}
		if c, ok := dofs.Y[n.ID]; ok {
			sys.A[2*i+1][c] = 1.0
		}
	}

	// Members
	index := m.NodeIndex()
	for k, mem := range m.Members {
		i1, ok1 := index[mem.Start]
		i2, ok2 := index[mem.End]
		if !ok1 || !ok2 {
			sys.Skipped = append(sys.Skipped, k)
			continue
		}
		n1, n2 := m.Nodes[i1], m.Nodes[i2]

		dx := n2.X - n1.X
		dy := n2.Y - n1.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length < MinLength {
			sys.Degenerate = append(sys.Degenerate, k)
			continue
		}
		cos := dx / length
		sin := dy / length

		col := sys.MemberColumn(k)
		sys.A[2*i1][col] += cos
		sys.A[2*i1+1][col] += sin
		sys.A[2*i2][col] -= cos
		sys.A[2*i2+1][col] -= sin
	}

	// Loads
	for i, n := range m.Nodes {
		sys.B[2*i] = -n.Fx
		sys.B[2*i+1] = -n.Fy
	}

	return sys
}

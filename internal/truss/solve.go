package truss

import "github.com/alexiusacademia/gotruss/internal/linsys"

// Solve computes support reactions and member forces of m.
//
// Solve never fails. Members referencing missing nodes are ignored,
// zero-length members and any unknown the elimination cannot pin down
// resolve to 0. Check Result.Diagnostics to tell these cases apart from
// a determinate solution.
func Solve(m Model) *Result {
	dofs := Classify(m.Nodes)
	sys := Assemble(m, dofs)
	sol := linsys.Solve(sys.A, sys.B)
	return Extract(dofs, sys, sol)
}

// Analysis pairs a model with its result. It is the read-only view handed
// to renderers: geometry, supports and loads pass through from the model,
// reactions and forces come from the result.
type Analysis struct {
	Model  Model
	Result *Result

	index map[int]int
}

// Analyze solves m and wraps the outcome for rendering
func Analyze(m Model) Analysis {
	return Analysis{
		Model:  m,
		Result: Solve(m),
		index:  m.NodeIndex(),
	}
}

// Nodes returns the model nodes
func (a Analysis) Nodes() []Node { return a.Model.Nodes }

// Members returns the model members
func (a Analysis) Members() []Member { return a.Model.Members }

// Node looks up a node by id
func (a Analysis) Node(id int) (Node, bool) {
	i, ok := a.index[id]
	if !ok {
		return Node{}, false
	}
	return a.Model.Nodes[i], true
}

// Reaction returns the reaction at a node, if it has one
func (a Analysis) Reaction(nodeID int) (Reaction, bool) {
	return a.Result.Reaction(nodeID)
}

// MemberForce returns the axial force of the i-th member
func (a Analysis) MemberForce(i int) float64 {
	return a.Result.MemberForces[i]
}

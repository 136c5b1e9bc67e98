package truss

import "github.com/alexiusacademia/gotruss/internal/linsys"

// Reaction holds the support reaction at a node. A component is nil when
// the node has no restraint in that direction.
type Reaction struct {
	X *float64
	Y *float64
}

// HasX reports whether the node carries an x reaction
func (r Reaction) HasX() bool { return r.X != nil }

// HasY reports whether the node carries a y reaction
func (r Reaction) HasY() bool { return r.Y != nil }

// XOrZero returns the x component, or 0 when absent
func (r Reaction) XOrZero() float64 {
	if r.X == nil {
		return 0
	}
	return *r.X
}

// YOrZero returns the y component, or 0 when absent
func (r Reaction) YOrZero() float64 {
	if r.Y == nil {
		return 0
	}
	return *r.Y
}

// Result is the outcome of one solve
type Result struct {
	// Reactions by node id, only for supported nodes
	Reactions map[int]Reaction

	// MemberForces in member order. Positive is tension.
	MemberForces []float64

	Diagnostics Diagnostics
}

// Reaction returns the reaction at a node
func (r *Result) Reaction(nodeID int) (Reaction, bool) {
	rc, ok := r.Reactions[nodeID]
	return rc, ok
}

// Extract maps a solved unknown vector back onto reactions and member
// forces. Reactions are read through the DOF owner table; member forces
// follow the reaction block in member order.
func Extract(dofs DOFMap, sys System, sol linsys.Solution) *Result {
	res := &Result{
		Reactions:    make(map[int]Reaction),
		MemberForces: make([]float64, sys.Unknowns()-sys.ReactionCount),
	}

	for i, owner := range dofs.Owners {
		v := sol.X[i]
		rc := res.Reactions[owner.NodeID]
		if owner.Axis == AxisX {
			rc.X = &v
		} else {
			rc.Y = &v
		}
		res.Reactions[owner.NodeID] = rc
	}

	copy(res.MemberForces, sol.X[sys.ReactionCount:])

	res.Diagnostics = newDiagnostics(sys, sol)
	return res
}

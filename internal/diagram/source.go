package diagram

import "github.com/alexiusacademia/gotruss/internal/truss"

// Source is the read-only view a renderer needs. Geometry, supports and
// loads pass through from the model; reactions and member forces come from
// a solve. truss.Analysis satisfies it.
type Source interface {
	Nodes() []truss.Node
	Members() []truss.Member
	Node(id int) (truss.Node, bool)
	Reaction(nodeID int) (truss.Reaction, bool)
	MemberForce(i int) float64
}

// DisplayThreshold is the smallest magnitude drawn as an arrow or treated
// as tension/compression when colouring
const DisplayThreshold = 1e-6

// ForceState names the sign of an axial force
func ForceState(f float64) string {
	switch {
	case f > DisplayThreshold:
		return "tension"
	case f < -DisplayThreshold:
		return "compression"
	default:
		return "zero"
	}
}

// bounds returns the bounding box of the node positions
func bounds(nodes []truss.Node) (minX, maxX, minY, maxY float64) {
	if len(nodes) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = nodes[0].X, nodes[0].X
	minY, maxY = nodes[0].Y, nodes[0].Y
	for _, n := range nodes[1:] {
		minX = min(minX, n.X)
		maxX = max(maxX, n.X)
		minY = min(minY, n.Y)
		maxY = max(maxY, n.Y)
	}
	return minX, maxX, minY, maxY
}

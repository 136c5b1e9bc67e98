package truss

// Axis identifies the direction of a reaction unknown
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// DOF is one reaction unknown: the node that owns it and its direction
type DOF struct {
	NodeID int
	Axis   Axis
}

// DOFMap is the reaction numbering of a model
type DOFMap struct {
	X      map[int]int // node id -> reaction index of the x component
	Y      map[int]int // node id -> reaction index of the y component
	Owners []DOF       // reaction index -> owning node and axis
}

// Count is the number of reaction unknowns
func (d DOFMap) Count() int {
	return len(d.Owners)
}

// Classify numbers the reaction unknowns in a single pass over the nodes.
// A pin takes two consecutive indices (x then y), a roller takes one, a
// free node none. The order fixes the reaction columns of the system.
func Classify(nodes []Node) DOFMap {
	d := DOFMap{
		X: make(map[int]int),
		Y: make(map[int]int),
	}

	for _, n := range nodes {
		if n.Support.RestrainsX() {
			d.X[n.ID] = len(d.Owners)
			d.Owners = append(d.Owners, DOF{NodeID: n.ID, Axis: AxisX})
		}
		if n.Support.RestrainsY() {
			d.Y[n.ID] = len(d.Owners)
			d.Owners = append(d.Owners, DOF{NodeID: n.ID, Axis: AxisY})
		}
	}

	return d
}

package truss

import "strings"

// Support is the kind of restraint at a node
type Support int

const (
	SupportNone    Support = iota // free joint
	SupportPin                    // restrains x and y
	SupportRollerX                // restrains x only
	SupportRollerY                // restrains y only
)

// ParseSupport classifies a free-form support label. Matching is a
// case-insensitive substring test in the order "pin", "rollerx", "rollery";
// anything else is SupportNone.
func ParseSupport(label string) Support {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(s, "pin"):
		return SupportPin
	case strings.Contains(s, "rollerx"):
		return SupportRollerX
	case strings.Contains(s, "rollery"):
		return SupportRollerY
	default:
		return SupportNone
	}
}

func (s Support) String() string {
	switch s {
	case SupportPin:
		return "pin"
	case SupportRollerX:
		return "rollerx"
	case SupportRollerY:
		return "rollery"
	default:
		return "none"
	}
}

// RestrainsX reports whether the support introduces an x reaction
func (s Support) RestrainsX() bool {
	return s == SupportPin || s == SupportRollerX
}

// RestrainsY reports whether the support introduces a y reaction
func (s Support) RestrainsY() bool {
	return s == SupportPin || s == SupportRollerY
}

// Node is a truss joint
type Node struct {
	ID      int
	X       float64
	Y       float64
	Support Support
	Fx      float64 // applied load, x component
	Fy      float64 // applied load, y component
}

// Member connects two nodes by id. The ids are not checked here; a member
// that references a missing node is dropped when the equations are built.
type Member struct {
	Start int
	End   int
}

// Model is an immutable snapshot of a truss for one solve
type Model struct {
	Nodes   []Node
	Members []Member
}

// NewModel numbers the nodes 0..N-1 in the order given and returns a model
// that owns copies of both slices.
func NewModel(nodes []Node, members []Member) Model {
	m := Model{
		Nodes:   make([]Node, len(nodes)),
		Members: make([]Member, len(members)),
	}
	for i, n := range nodes {
		n.ID = i
		m.Nodes[i] = n
	}
	copy(m.Members, members)
	return m
}

// NodeIndex maps node ids to their position in the node list. Built once
// per solve so member endpoints resolve in constant time.
func (m Model) NodeIndex() map[int]int {
	idx := make(map[int]int, len(m.Nodes))
	for i, n := range m.Nodes {
		idx[n.ID] = i
	}
	return idx
}

package nscp

import "github.com/alexiusacademia/gotruss/internal/truss"

// LoadType names an unfactored nodal load case
type LoadType string

const (
	Dead       LoadType = "dead"       // D
	Live       LoadType = "live"       // L
	Roof       LoadType = "roof"       // Lr
	Wind       LoadType = "wind"       // W
	Earthquake LoadType = "earthquake" // E
	Rain       LoadType = "rain"       // R
)

// LoadTypes lists the load cases in report order
var LoadTypes = []LoadType{Dead, Live, Roof, Wind, Earthquake, Rain}

// Load is a nodal force
type Load struct {
	Fx float64
	Fy float64
}

// LoadCases holds the unfactored loads acting on one node
type LoadCases map[LoadType]Load

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity-only checks
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// FindCombination looks up a combination by ID
func FindCombination(combinations []LoadCombination, id string) (LoadCombination, bool) {
	for _, combo := range combinations {
		if combo.ID == id {
			return combo, true
		}
	}
	return LoadCombination{}, false
}

// Factor returns the load factor applied to a load type
func (lc LoadCombination) Factor(t LoadType) float64 {
	switch t {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// FactoredLoad combines the unfactored loads on a node
func (lc LoadCombination) FactoredLoad(cases LoadCases) Load {
	var total Load
	for _, t := range LoadTypes {
		l, ok := cases[t]
		if !ok {
			continue
		}
		f := lc.Factor(t)
		total.Fx += f * l.Fx
		total.Fy += f * l.Fy
	}
	return total
}

// Apply returns a copy of m whose nodal loads are the factored loads of
// this combination. Nodes without load cases are unloaded.
func (lc LoadCombination) Apply(m truss.Model, cases map[int]LoadCases) truss.Model {
	nodes := make([]truss.Node, len(m.Nodes))
	for i, n := range m.Nodes {
		l := lc.FactoredLoad(cases[n.ID])
		n.Fx, n.Fy = l.Fx, l.Fy
		nodes[i] = n
	}
	return truss.Model{Nodes: nodes, Members: append([]truss.Member(nil), m.Members...)}
}

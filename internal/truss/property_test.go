package truss

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var supportLabels = []string{"pin", "rollerx", "rollery", "", "Pin support", "free"}

// randomModel builds a model from flat generated values. Members connect
// consecutive nodes plus a closing member, and one extra member may point
// past the node list.
func randomModel(coords []float64, labels []int, loads []float64) Model {
	n := len(labels)
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{
			X:       coords[2*i],
			Y:       coords[2*i+1],
			Support: ParseSupport(supportLabels[labels[i]%len(supportLabels)]),
			Fx:      loads[2*i],
			Fy:      loads[2*i+1],
		}
	}
	var members []Member
	for i := 0; i+1 < n; i++ {
		members = append(members, Member{Start: i, End: i + 1})
	}
	members = append(members, Member{Start: n - 1, End: 0}, Member{Start: 0, End: n + 2})
	return NewModel(nodes, members)
}

func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("loaded triangle is in global equilibrium", prop.ForAll(
		func(apexX, apexY float64, loads []float64) bool {
			m := NewModel(
				[]Node{
					{X: 0, Y: 0, Support: SupportPin, Fx: loads[0], Fy: loads[1]},
					{X: 4, Y: 0, Support: SupportRollerY, Fx: loads[2], Fy: loads[3]},
					{X: apexX, Y: apexY, Fx: loads[4], Fy: loads[5]},
				},
				[]Member{{0, 1}, {1, 2}, {0, 2}},
			)
			res := Solve(m)
			sx, sy := sumForces(m, res)
			return math.Abs(sx) < 1e-6 && math.Abs(sy) < 1e-6 &&
				res.Diagnostics.Determinacy() == Determinate
		},
		gen.Float64Range(0.5, 3.5),
		gen.Float64Range(0.5, 3),
		gen.SliceOfN(6, gen.Float64Range(-100, 100)),
	))

	properties.Property("zero load gives zero reactions and forces", prop.ForAll(
		func(coords []float64, labels []int) bool {
			loads := make([]float64, 2*len(labels))
			res := Solve(randomModel(coords, labels, loads))
			for _, rc := range res.Reactions {
				if rc.XOrZero() != 0 || rc.YOrZero() != 0 {
					return false
				}
			}
			for _, f := range res.MemberForces {
				if f != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(10, gen.Float64Range(-10, 10)),
		gen.SliceOfN(5, gen.IntRange(0, 100)),
	))

	properties.Property("solving twice is bit identical", prop.ForAll(
		func(coords []float64, labels []int, loads []float64) bool {
			m := randomModel(coords, labels, loads)
			a, b := Solve(m), Solve(m)
			if len(a.MemberForces) != len(b.MemberForces) || len(a.Reactions) != len(b.Reactions) {
				return false
			}
			for i := range a.MemberForces {
				if math.Float64bits(a.MemberForces[i]) != math.Float64bits(b.MemberForces[i]) {
					return false
				}
			}
			for id, ra := range a.Reactions {
				rb := b.Reactions[id]
				if math.Float64bits(ra.XOrZero()) != math.Float64bits(rb.XOrZero()) ||
					math.Float64bits(ra.YOrZero()) != math.Float64bits(rb.YOrZero()) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(10, gen.Float64Range(-10, 10)),
		gen.SliceOfN(5, gen.IntRange(0, 100)),
		gen.SliceOfN(10, gen.Float64Range(-50, 50)),
	))

	properties.Property("system always has two rows per node", prop.ForAll(
		func(coords []float64, labels []int) bool {
			m := randomModel(coords, labels, make([]float64, 2*len(labels)))
			sys := Assemble(m, Classify(m.Nodes))
			return sys.Equations() == 2*len(m.Nodes) &&
				sys.Unknowns() == sys.ReactionCount+len(m.Members)
		},
		gen.SliceOfN(10, gen.Float64Range(-10, 10)),
		gen.SliceOfN(5, gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}

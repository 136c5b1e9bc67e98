package nscp

import (
	"math"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// CombinationResult is the solve of one factored load combination
type CombinationResult struct {
	Combination LoadCombination
	Result      *truss.Result
}

// MemberEnvelope holds the extreme axial forces of a member
type MemberEnvelope struct {
	MaxTension       float64 // largest positive force, 0 if never in tension
	TensionCombo     string  // governing combination ID, empty if none
	MaxCompression   float64 // most negative force, 0 if never in compression
	CompressionCombo string
}

// ReactionEnvelope holds the largest reaction components (by magnitude)
// at a supported node
type ReactionEnvelope struct {
	X      float64
	XCombo string
	Y      float64
	YCombo string
}

// Envelope collects the solves of every combination and the governing values
type Envelope struct {
	Results   []CombinationResult
	Members   []MemberEnvelope
	Reactions map[int]ReactionEnvelope
}

// CalculateEnvelope solves m once per load combination and records the
// governing member forces and reactions. Each combination is an
// independent linear solve; results are not superposed.
func CalculateEnvelope(m truss.Model, cases map[int]LoadCases, combinations []LoadCombination) Envelope {
	env := Envelope{
		Members:   make([]MemberEnvelope, len(m.Members)),
		Reactions: make(map[int]ReactionEnvelope),
	}

	for _, combo := range combinations {
		res := truss.Solve(combo.Apply(m, cases))
		env.Results = append(env.Results, CombinationResult{Combination: combo, Result: res})

		for i, f := range res.MemberForces {
			me := &env.Members[i]
			if f > me.MaxTension {
				me.MaxTension = f
				me.TensionCombo = combo.ID
			}
			if f < me.MaxCompression {
				me.MaxCompression = f
				me.CompressionCombo = combo.ID
			}
		}

		for id, rc := range res.Reactions {
			re := env.Reactions[id]
			if rc.HasX() && (re.XCombo == "" || math.Abs(*rc.X) > math.Abs(re.X)) {
				re.X = *rc.X
				re.XCombo = combo.ID
			}
			if rc.HasY() && (re.YCombo == "" || math.Abs(*rc.Y) > math.Abs(re.Y)) {
				re.Y = *rc.Y
				re.YCombo = combo.ID
			}
			env.Reactions[id] = re
		}
	}

	return env
}

// Governing returns the combination producing the largest absolute member
// force overall
func (e Envelope) Governing() (float64, LoadCombination) {
	var maxForce float64
	var governingCombo LoadCombination

	for _, cr := range e.Results {
		for _, f := range cr.Result.MemberForces {
			if math.Abs(f) > maxForce {
				maxForce = math.Abs(f)
				governingCombo = cr.Combination
			}
		}
	}

	return maxForce, governingCombo
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// jsonReport is the machine-readable form of a solve
type jsonReport struct {
	Name        string          `json:"name,omitempty"`
	Combination string          `json:"combination,omitempty"`
	Reactions   []jsonReaction  `json:"reactions"`
	Members     []jsonMember    `json:"members"`
	Diagnostics jsonDiagnostics `json:"diagnostics"`
}

type jsonReaction struct {
	Node int      `json:"node"`
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
}

type jsonMember struct {
	Index int     `json:"index"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Force float64 `json:"force"`
	State string  `json:"state"`
}

type jsonDiagnostics struct {
	Determinacy       string  `json:"determinacy"`
	Equations         int     `json:"equations"`
	Unknowns          int     `json:"unknowns"`
	Rank              int     `json:"rank"`
	Residual          float64 `json:"residual"`
	FreeUnknowns      []int   `json:"freeUnknowns,omitempty"`
	SkippedMembers    []int   `json:"skippedMembers,omitempty"`
	DegenerateMembers []int   `json:"degenerateMembers,omitempty"`
	NonFinite         bool    `json:"nonFinite,omitempty"`
}

func buildJSONReport(name, combo string, a truss.Analysis) jsonReport {
	d := a.Result.Diagnostics
	rep := jsonReport{
		Name:        name,
		Combination: combo,
		Reactions:   []jsonReaction{},
		Members:     make([]jsonMember, len(a.Members())),
		Diagnostics: jsonDiagnostics{
			Determinacy:       d.Determinacy().String(),
			Equations:         d.Equations,
			Unknowns:          d.Unknowns,
			Rank:              d.Rank,
			Residual:          d.Residual,
			FreeUnknowns:      d.FreeUnknowns,
			SkippedMembers:    d.SkippedMembers,
			DegenerateMembers: d.DegenerateMembers,
			NonFinite:         d.NonFinite,
		},
	}

	// node order keeps the output stable
	for _, n := range a.Nodes() {
		rc, ok := a.Reaction(n.ID)
		if !ok {
			continue
		}
		jr := jsonReaction{Node: n.ID}
		if rc.HasX() {
			x := display(*rc.X)
			jr.X = &x
		}
		if rc.HasY() {
			y := display(*rc.Y)
			jr.Y = &y
		}
		rep.Reactions = append(rep.Reactions, jr)
	}

	for i, m := range a.Members() {
		f := display(a.MemberForce(i))
		rep.Members[i] = jsonMember{
			Index: i,
			Start: m.Start,
			End:   m.End,
			Force: f,
			State: diagram.ForceState(f),
		}
	}

	return rep
}

func writeJSONReport(out io.Writer, rep jsonReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// printAnalysis writes the tabular report of a solve
func printAnalysis(out io.Writer, a truss.Analysis, precision int) {
	f := func(v float64) string {
		return fmt.Sprintf("%.*f", precision, display(v))
	}

	// Nodes
	printSection(out, "NODES")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tX\tY\tSupport\tFx\tFy\n")
	fmt.Fprintf(w, "  ────\t─\t─\t───────\t──\t──\n")
	for _, n := range a.Nodes() {
		fmt.Fprintf(w, "  N%d\t%s\t%s\t%s\t%s\t%s\n", n.ID, f(n.X), f(n.Y), n.Support, f(n.Fx), f(n.Fy))
	}
	w.Flush()
	fmt.Fprintln(out)

	// Reactions
	printSection(out, "SUPPORT REACTIONS")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tSupport\tRx\tRy\n")
	fmt.Fprintf(w, "  ────\t───────\t──\t──\n")
	var sumRx, sumRy float64
	for _, n := range a.Nodes() {
		rc, ok := a.Reaction(n.ID)
		if !ok {
			continue
		}
		rx, ry := "-", "-"
		if rc.HasX() {
			rx = f(*rc.X)
			sumRx += *rc.X
		}
		if rc.HasY() {
			ry = f(*rc.Y)
			sumRy += *rc.Y
		}
		fmt.Fprintf(w, "  N%d\t%s\t%s\t%s\n", n.ID, n.Support, rx, ry)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Member forces
	printSection(out, "MEMBER FORCES")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tNodes\tLength\tForce\tState\n")
	fmt.Fprintf(w, "  ──────\t─────\t──────\t─────\t─────\n")
	maxT, maxC := 0.0, 0.0
	maxTIdx, maxCIdx := -1, -1
	for i, m := range a.Members() {
		length := "-"
		n1, ok1 := a.Node(m.Start)
		n2, ok2 := a.Node(m.End)
		if ok1 && ok2 {
			length = f(math.Hypot(n2.X-n1.X, n2.Y-n1.Y))
		}
		force := a.MemberForce(i)
		fmt.Fprintf(w, "  M%d\t%d-%d\t%s\t%s\t%s\n", i, m.Start, m.End, length, f(force), forceState(force))

		if force > maxT {
			maxT, maxTIdx = force, i
		}
		if force < maxC {
			maxC, maxCIdx = force, i
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	// Equilibrium check
	var sumFx, sumFy float64
	for _, n := range a.Nodes() {
		sumFx += n.Fx
		sumFy += n.Fy
	}
	printSection(out, "GLOBAL EQUILIBRIUM")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ΣFx (loads + reactions):\t%s\n", f(sumFx+sumRx))
	fmt.Fprintf(w, "  ΣFy (loads + reactions):\t%s\n", f(sumFy+sumRy))
	w.Flush()
	fmt.Fprintln(out)

	d := a.Result.Diagnostics
	lines := []string{
		fmt.Sprintf("Equations: %d   Unknowns: %d   Rank: %d", d.Equations, d.Unknowns, d.Rank),
		fmt.Sprintf("System: %s", d.Determinacy()),
	}
	if maxTIdx >= 0 {
		lines = append(lines, fmt.Sprintf("Max tension:     M%d = %s", maxTIdx, f(maxT)))
	}
	if maxCIdx >= 0 {
		lines = append(lines, fmt.Sprintf("Max compression: M%d = %s", maxCIdx, f(maxC)))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("TRUSS ANALYSIS RESULT", lines))
	fmt.Fprintln(out)

	for _, msg := range diagnosticMessages(d) {
		fmt.Fprintf(out, "  %s\n", warning(msg))
	}
}

// diagnosticMessages explains the non-fatal conditions of a solve
func diagnosticMessages(d truss.Diagnostics) []string {
	var msgs []string
	if len(d.SkippedMembers) > 0 {
		msgs = append(msgs, fmt.Sprintf("Members %v reference missing nodes and were ignored", d.SkippedMembers))
	}
	if len(d.DegenerateMembers) > 0 {
		msgs = append(msgs, fmt.Sprintf("Members %v have zero length; their force is reported as 0", d.DegenerateMembers))
	}
	if d.NonFinite {
		msgs = append(msgs, "Coordinates or loads contain NaN or infinite values; results are not meaningful")
		return msgs
	}
	switch d.Determinacy() {
	case truss.Indeterminate:
		msgs = append(msgs, fmt.Sprintf("%d unknown(s) could not be determined and were set to 0 (indeterminate or unconstrained); results depend on pivot order", len(d.FreeUnknowns)))
	case truss.Unstable:
		msgs = append(msgs, fmt.Sprintf("Loads cannot be equilibrated by the supports and members (residual %.3g); the structure is unstable", d.Residual))
	}
	return msgs
}

func logDiagnostics(d truss.Diagnostics) {
	logger.Debug("solved equilibrium system",
		"equations", d.Equations,
		"unknowns", d.Unknowns,
		"rank", d.Rank,
		"residual", d.Residual,
		"determinacy", d.Determinacy().String(),
	)
	if len(d.FreeUnknowns) > 0 {
		logger.Debug("unknowns without pivot", "columns", d.FreeUnknowns)
	}
	for _, msg := range diagnosticMessages(d) {
		logger.Info(msg)
	}
}

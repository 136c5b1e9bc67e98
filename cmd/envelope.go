package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/input"
	"github.com/alexiusacademia/gotruss/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	envelopeFile       string
	envelopeShowAll    bool
	envelopeSimplified bool
	envelopePrecision  int
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Member force envelope over NSCP load combinations",
	Long: `Solve the truss once for every NSCP 2015 load combination and report
the governing tension and compression of each member.

Node loads are given per load type under "cases":

  nodes:
    - x: 4
      y: 3
      cases:
        D: {fy: -10}
        L: {fy: -5}

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Envelope over the full NSCP set
  gotruss envelope --file roof.yaml

  # Gravity only, with the result of every combination
  gotruss envelope -f roof.yaml --simplified --all`,
	Run: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	envelopeCmd.Flags().StringVarP(&envelopeFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	envelopeCmd.MarkFlagRequired("file")

	// Options
	envelopeCmd.Flags().BoolVarP(&envelopeShowAll, "all", "a", false, "Show member forces for every load combination")
	envelopeCmd.Flags().BoolVarP(&envelopeSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	envelopeCmd.Flags().IntVarP(&envelopePrecision, "precision", "p", 2, "Decimal places in the report")
}

func runEnvelope(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	doc, err := input.LoadFromFile(envelopeFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading truss: %v\n", err)
		return
	}

	if !doc.HasLoadCases() {
		fmt.Fprintln(out, "Error: Please provide load cases (D, L, Lr, W, E, R) on at least one node.")
		fmt.Fprintln(out, "Use 'gotruss envelope --help' for usage information.")
		return
	}

	combinations := nscp.LoadCombinations
	if envelopeSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	f := func(v float64) string {
		return fmt.Sprintf("%.*f", envelopePrecision, display(v))
	}

	m := doc.Model()
	env := nscp.CalculateEnvelope(m, doc.LoadCases(), combinations)
	logger.Debug("computed envelope", "combinations", len(env.Results), "members", len(env.Members))

	printHeader(out, "NSCP 2015 TRUSS FORCE ENVELOPE")
	if doc.Name != "" {
		fmt.Fprintf(out, "  Truss: %s\n\n", doc.Name)
	}

	maxForce, governingCombo := env.Governing()

	if envelopeShowAll {
		printSection(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3)")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination")
		for i := range m.Members {
			fmt.Fprintf(w, "\tM%d", i)
		}
		fmt.Fprintf(w, "\tSystem\n")
		fmt.Fprintf(w, "  ─\t───────────")
		for range m.Members {
			fmt.Fprintf(w, "\t──")
		}
		fmt.Fprintf(w, "\t──────\n")

		for _, cr := range env.Results {
			fmt.Fprintf(w, "  %s\t%s", cr.Combination.ID, cr.Combination.Description)
			for _, force := range cr.Result.MemberForces {
				fmt.Fprintf(w, "\t%s", f(force))
			}
			marker := ""
			if cr.Combination.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "\t%s%s\n", cr.Result.Diagnostics.Determinacy(), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printSection(out, "MEMBER ENVELOPE")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tNodes\tMax Tension\tCombo\tMax Compression\tCombo\n")
	fmt.Fprintf(w, "  ──────\t─────\t───────────\t─────\t───────────────\t─────\n")
	for i, me := range env.Members {
		mem := m.Members[i]
		tc, cc := me.TensionCombo, me.CompressionCombo
		if tc == "" {
			tc = "-"
		}
		if cc == "" {
			cc = "-"
		}
		fmt.Fprintf(w, "  M%d\t%d-%d\t%s\t%s\t%s\t%s\n", i, mem.Start, mem.End,
			tensionStyle.Render(f(me.MaxTension)), tc,
			compressionStyle.Render(f(me.MaxCompression)), cc)
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "REACTION ENVELOPE (largest magnitude)")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tSupport\tRx\tCombo\tRy\tCombo\n")
	fmt.Fprintf(w, "  ────\t───────\t──\t─────\t──\t─────\n")
	for _, n := range m.Nodes {
		re, ok := env.Reactions[n.ID]
		if !ok {
			continue
		}
		rx, xc, ry, yc := "-", "-", "-", "-"
		if re.XCombo != "" {
			rx, xc = f(re.X), re.XCombo
		}
		if re.YCombo != "" {
			ry, yc = f(re.Y), re.YCombo
		}
		fmt.Fprintf(w, "  N%d\t%s\t%s\t%s\t%s\t%s\n", n.ID, n.Support, rx, xc, ry, yc)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Warn once per combination that did not solve cleanly
	for _, cr := range env.Results {
		for _, msg := range diagnosticMessages(cr.Result.Diagnostics) {
			logger.Info(msg, "combo", cr.Combination.ID)
		}
	}

	printSection(out, "RESULT")
	if governingCombo.ID == "" {
		fmt.Fprintln(out, "  All member forces are zero under every combination.")
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  MAX |MEMBER FORCE| = %s\n", f(maxForce))
	fmt.Fprintf(out, "  ╚═══════════════════════════════════════╝\n")
	fmt.Fprintln(out)
}

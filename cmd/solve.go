package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/input"
	"github.com/alexiusacademia/gotruss/internal/nscp"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/spf13/cobra"
)

var (
	solveFile       string
	solveJSON       bool
	solveDiagram    bool
	solveExportFile string
	solvePrecision  int
	solveCombo      string
	solveSimplified bool
	solveWidth      float64
	solveHeight     float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute support reactions and member forces",
	Long: `Compute the support reactions and axial member forces of a 2D truss
defined in a JSON or YAML file.

Each node contributes two equilibrium equations (ΣFx = 0, ΣFy = 0).
Pins add an x and a y reaction, roller-x an x reaction, roller-y a y
reaction. The system is solved by Gauss-Jordan elimination with partial
pivoting. Member forces are positive in tension.

Malformed numbers in the file read as 0 and members that reference
missing nodes are ignored; the solve always completes.

Examples:
  # Solve with the loads given on each node
  gotruss solve --file bridge.yaml

  # Machine-readable output
  gotruss solve -f bridge.json --json

  # Solve for a factored load combination built from the node load cases
  gotruss solve -f roof.yaml --combo 2

  # Sketch the truss and export a diagram
  gotruss solve -f bridge.yaml --diagram -o bridge.png`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	solveCmd.MarkFlagRequired("file")

	// Output options
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print results as JSON")
	solveCmd.Flags().IntVarP(&solvePrecision, "precision", "p", 3, "Decimal places in the report")

	// Load combination
	solveCmd.Flags().StringVarP(&solveCombo, "combo", "c", "", "Solve for an NSCP load combination ID using the node load cases")
	solveCmd.Flags().BoolVarP(&solveSimplified, "simplified", "s", false, "Use simplified combinations (1.4D and 1.2D+1.6L)")

	// Diagram options
	solveCmd.Flags().BoolVar(&solveDiagram, "diagram", false, "Show ASCII truss sketch and force diagram")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	solveCmd.Flags().Float64Var(&solveWidth, "width", 8, "Exported diagram width (in)")
	solveCmd.Flags().Float64Var(&solveHeight, "height", 6, "Exported diagram height (in)")
}

func runSolve(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	doc, err := input.LoadFromFile(solveFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading truss: %v\n", err)
		return
	}

	m := doc.Model()
	logger.Debug("loaded truss", "file", solveFile, "nodes", len(m.Nodes), "members", len(m.Members))

	var combo nscp.LoadCombination
	if solveCombo != "" {
		combinations := nscp.LoadCombinations
		if solveSimplified {
			combinations = nscp.SimplifiedCombinations
		}
		var ok bool
		combo, ok = nscp.FindCombination(combinations, solveCombo)
		if !ok {
			fmt.Fprintf(out, "Error: unknown load combination %q\n", solveCombo)
			return
		}
		if !doc.HasLoadCases() {
			logger.Warn("no node defines load cases; the combination produces no load", "combo", combo.ID)
		}
		m = combo.Apply(m, doc.LoadCases())
	}

	a := truss.Analyze(m)
	logDiagnostics(a.Result.Diagnostics)

	if solveJSON {
		if err := writeJSONReport(out, buildJSONReport(doc.Name, combo.ID, a)); err != nil {
			fmt.Fprintf(out, "Error writing JSON: %v\n", err)
			return
		}
	} else {
		printHeader(out, "TRUSS FORCE ANALYSIS")
		if doc.Name != "" {
			fmt.Fprintf(out, "  Truss: %s\n", doc.Name)
		}
		if doc.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", doc.Description)
		}
		if combo.ID != "" {
			fmt.Fprintf(out, "  Load combination %s: %s\n", combo.ID, combo.Description)
		}
		fmt.Fprintln(out)

		printAnalysis(out, a, solvePrecision)

		if solveDiagram {
			fmt.Fprint(out, diagram.DrawASCIITruss(a, 60, 20))
			fmt.Fprint(out, diagram.DrawForceBars(a, 30))
		}
	}

	if solveExportFile != "" {
		opts := diagram.DefaultExportOptions()
		opts.Width, opts.Height = solveWidth, solveHeight
		if doc.Name != "" {
			opts.Title = doc.Name
		}
		path, err := diagram.ExportTrussDiagram(a, solveExportFile, opts)
		if err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
			return
		}
		if !solveJSON {
			fmt.Fprintf(out, "\n  Diagram exported to: %s\n\n", path)
		}
	}
}

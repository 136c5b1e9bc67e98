package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/input"
	"github.com/alexiusacademia/gotruss/internal/linsys"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/spf13/cobra"
)

var (
	systemFile      string
	systemPrecision int
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Print the assembled equilibrium system",
	Long: `Print the reaction numbering, the equilibrium matrix A and the load
vector b assembled for a truss, together with the rank and pivot columns
found by elimination.

Rows are ordered ΣFx, ΣFy per node. Columns hold the reaction unknowns
first and the member forces after them.

Examples:
  gotruss system --file bridge.yaml`,
	Run: runSystem,
}

func init() {
	rootCmd.AddCommand(systemCmd)

	systemCmd.Flags().StringVarP(&systemFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	systemCmd.MarkFlagRequired("file")
	systemCmd.Flags().IntVarP(&systemPrecision, "precision", "p", 3, "Decimal places in the matrix")
}

func runSystem(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	doc, err := input.LoadFromFile(systemFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading truss: %v\n", err)
		return
	}

	m := doc.Model()
	dofs := truss.Classify(m.Nodes)
	sys := truss.Assemble(m, dofs)
	sol := linsys.Solve(sys.A, sys.B)

	printHeader(out, "TRUSS EQUILIBRIUM SYSTEM")

	printSection(out, "UNKNOWNS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column\tUnknown\n")
	fmt.Fprintf(w, "  ──────\t───────\n")
	for i, label := range columnLabels(m, dofs, sys) {
		fmt.Fprintf(w, "  %d\t%s\n", i, label)
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, fmt.Sprintf("MATRIX A | b  (%d x %d)", sys.Equations(), sys.Unknowns()))
	printMatrix(out, m, sys, systemPrecision)
	fmt.Fprintln(out)

	printSection(out, "ELIMINATION")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rank:\t%d\n", sol.Rank)
	fmt.Fprintf(w, "  Pivot columns:\t%v\n", sol.PivotColumns)
	fmt.Fprintf(w, "  Free unknowns:\t%v\n", sol.Free())
	fmt.Fprintf(w, "  Residual:\t%.3g\n", sol.Residual)
	w.Flush()
	fmt.Fprintln(out)

	if len(sys.Skipped) > 0 {
		fmt.Fprintf(out, "  %s\n", warning(fmt.Sprintf("Members %v reference missing nodes and were ignored", sys.Skipped)))
	}
	if len(sys.Degenerate) > 0 {
		fmt.Fprintf(out, "  %s\n", warning(fmt.Sprintf("Members %v have zero length", sys.Degenerate)))
	}
}

// columnLabels names each column of the system: Rx0, Ry0, ... then F0, F1, ...
func columnLabels(m truss.Model, dofs truss.DOFMap, sys truss.System) []string {
	labels := make([]string, 0, sys.Unknowns())
	for _, o := range dofs.Owners {
		labels = append(labels, fmt.Sprintf("R%s%d", o.Axis, o.NodeID))
	}
	for i, mem := range m.Members {
		labels = append(labels, fmt.Sprintf("F%d (%d-%d)", i, mem.Start, mem.End))
	}
	return labels
}

func printMatrix(out io.Writer, m truss.Model, sys truss.System, precision int) {
	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Row\t")
	for j, n := 0, sys.Unknowns(); j < n; j++ {
		if j < sys.ReactionCount {
			fmt.Fprintf(w, "R%d\t", j)
		} else {
			fmt.Fprintf(w, "F%d\t", j-sys.ReactionCount)
		}
	}
	fmt.Fprintf(w, "|\tb\t\n")

	for i, row := range sys.A {
		axis := "x"
		if i%2 == 1 {
			axis = "y"
		}
		fmt.Fprintf(w, "  ΣF%s N%d\t", axis, m.Nodes[i/2].ID)
		for _, v := range row {
			fmt.Fprintf(w, "%.*f\t", precision, display(v))
		}
		fmt.Fprintf(w, "|\t%.*f\t\n", precision, display(sys.B[i]))
	}
	w.Flush()
}

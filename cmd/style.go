package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	tensionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DC143C"))

	compressionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1E3CC8"))

	zeroStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
}

// display folds negative zero and rounding noise into 0 for printing
func display(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}

// forceState renders TENSION / COMPRESSION / ZERO in the member colours
func forceState(f float64) string {
	switch diagram.ForceState(f) {
	case "tension":
		return tensionStyle.Render("TENSION")
	case "compression":
		return compressionStyle.Render("COMPRESSION")
	default:
		return zeroStyle.Render("ZERO")
	}
}

func warning(msg string) string {
	return warnStyle.Render("⚠ " + msg)
}

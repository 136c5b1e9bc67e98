package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Support markers drawn one row below the node
var supportMarks = map[truss.Support]rune{
	truss.SupportPin:     '▲',
	truss.SupportRollerX: '◁',
	truss.SupportRollerY: '○',
}

// DrawASCIITruss sketches the truss geometry on a character grid of the
// given size. Nodes are shown by id (0-9, '●' above that), supports by a
// marker under the node.
func DrawASCIITruss(src Source, cols, rows int) string {
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}

	nodes := src.Nodes()
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	minX, maxX, minY, maxY := bounds(nodes)
	// leave a row for support markers and a column margin on both sides
	usableCols := float64(cols - 3)
	usableRows := float64(rows - 2)
	scale := math.Inf(1)
	if maxX-minX > 0 {
		scale = usableCols / (maxX - minX)
	}
	// characters are roughly twice as tall as wide
	if maxY-minY > 0 {
		scale = math.Min(scale, 2*usableRows/(maxY-minY))
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	toGrid := func(x, y float64) (int, int) {
		c := 1 + int(math.Round((x-minX)*scale))
		r := int(math.Round((maxY - y) * scale / 2))
		return c, r
	}
	put := func(c, r int, ch rune) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = ch
		}
	}

	for _, m := range src.Members() {
		n1, ok1 := src.Node(m.Start)
		n2, ok2 := src.Node(m.End)
		if !ok1 || !ok2 {
			continue
		}
		c1, r1 := toGrid(n1.X, n1.Y)
		c2, r2 := toGrid(n2.X, n2.Y)
		ch := lineRune(c2-c1, r2-r1)

		steps := 2*max(abs(c2-c1), abs(r2-r1)) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			c := int(math.Round(float64(c1) + t*float64(c2-c1)))
			r := int(math.Round(float64(r1) + t*float64(r2-r1)))
			put(c, r, ch)
		}
	}

	for _, n := range nodes {
		c, r := toGrid(n.X, n.Y)
		label := '●'
		if n.ID >= 0 && n.ID < 10 {
			label = rune('0' + n.ID)
		}
		put(c, r, label)
		if mark, ok := supportMarks[n.Support]; ok {
			put(c, r+1, mark)
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  TRUSS GEOMETRY\n")
	sb.WriteString("  ──────────────\n\n")
	for _, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  0-9 = Node id (● for ids above 9)\n")
	sb.WriteString("  ▲ = Pin   ◁ = Roller (x restrained)   ○ = Roller (y restrained)\n")

	return sb.String()
}

func lineRune(dc, dr int) rune {
	switch {
	case dr == 0 || abs(dr)*3 < abs(dc):
		return '─'
	case dc == 0 || abs(dc)*3 < abs(dr):
		return '│'
	case (dc > 0) == (dr > 0):
		// grid rows grow downward
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawForceBars draws one bar per member proportional to its axial force.
// Tension bars use '█', compression bars '▒'.
func DrawForceBars(src Source, width int) string {
	var sb strings.Builder

	if width < 10 {
		width = 10
	}

	members := src.Members()
	maxForce := 0.0
	for i := range members {
		maxForce = math.Max(maxForce, math.Abs(src.MemberForce(i)))
	}

	sb.WriteString("\n")
	sb.WriteString("  AXIAL FORCE DIAGRAM\n")
	sb.WriteString("  ───────────────────\n\n")

	for i, m := range members {
		f := src.MemberForce(i)
		barLen := 0
		if maxForce > 0 {
			barLen = int(math.Round(math.Abs(f) / maxForce * float64(width)))
		}

		fill := "█"
		mark := "T"
		switch ForceState(f) {
		case "compression":
			fill = "▒"
			mark = "C"
		case "zero":
			mark = "-"
		}

		label := fmt.Sprintf("M%d (%d-%d)", i, m.Start, m.End)
		sb.WriteString(fmt.Sprintf("  %-14s │%s %.2f %s\n", label, strings.Repeat(fill, barLen), f, mark))
	}

	sb.WriteString("\n  █ = Tension (T)   ▒ = Compression (C)\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	tensionColor     = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	compressionColor = color.RGBA{R: 30, G: 60, B: 200, A: 255}
	zeroColor        = color.Gray{Y: 110}
	nodeColor        = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	reactionColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	loadColor        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func forceColor(f float64) color.Color {
	switch ForceState(f) {
	case "tension":
		return tensionColor
	case "compression":
		return compressionColor
	default:
		return zeroColor
	}
}

// ExportTrussDiagram draws the truss with member forces, supports,
// reactions and applied loads and saves it to filename. The format follows
// the file extension (png, svg, pdf, ...); a missing extension saves PNG.
// It returns the path actually written.
func ExportTrussDiagram(src Source, filename string, opts ExportOptions) (string, error) {
	filename = opts.ResolveFilename(filename)
	if err := opts.Validate(); err != nil {
		return "", err
	}

	p, err := buildTrussPlot(src, opts.Title)
	if err != nil {
		return "", err
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, filename); err != nil {
		return "", fmt.Errorf("saving %s: %w", filename, err)
	}
	return filename, nil
}

func buildTrussPlot(src Source, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	nodes := src.Nodes()
	minX, maxX, minY, maxY := bounds(nodes)
	span := math.Max(math.Max(maxX-minX, maxY-minY), 1)
	arrow := 0.08 * span

	// Pad the axes so arrows and labels stay inside
	p.X.Min, p.X.Max = minX-3*arrow, maxX+3*arrow
	p.Y.Min, p.Y.Max = minY-3*arrow, maxY+3*arrow

	// Members
	var forceLabels plotter.XYLabels
	legendDone := map[string]bool{}
	for i, m := range src.Members() {
		n1, ok1 := src.Node(m.Start)
		n2, ok2 := src.Node(m.End)
		if !ok1 || !ok2 {
			continue
		}
		f := src.MemberForce(i)

		line, err := plotter.NewLine(plotter.XYs{{X: n1.X, Y: n1.Y}, {X: n2.X, Y: n2.Y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = forceColor(f)
		p.Add(line)

		state := ForceState(f)
		if !legendDone[state] {
			p.Legend.Add(state, line)
			legendDone[state] = true
		}

		forceLabels.XYs = append(forceLabels.XYs, plotter.XY{X: (n1.X + n2.X) / 2, Y: (n1.Y + n2.Y) / 2})
		forceLabels.Labels = append(forceLabels.Labels, fmt.Sprintf("%.2f", f))
	}
	if len(forceLabels.XYs) > 0 {
		l, err := plotter.NewLabels(forceLabels)
		if err != nil {
			return nil, err
		}
		l.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
		p.Add(l)
	}

	if len(nodes) == 0 {
		return p, nil
	}

	// Nodes
	nodePts := make(plotter.XYs, len(nodes))
	nodeLabels := plotter.XYLabels{XYs: make([]plotter.XY, len(nodes)), Labels: make([]string, len(nodes))}
	for i, n := range nodes {
		nodePts[i] = plotter.XY{X: n.X, Y: n.Y}
		nodeLabels.XYs[i] = nodePts[i]
		nodeLabels.Labels[i] = fmt.Sprintf("N%d", n.ID)
	}
	scatter, err := plotter.NewScatter(nodePts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = nodeColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	labels, err := plotter.NewLabels(nodeLabels)
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}
	p.Add(labels)

	// Supports
	if err := addSupports(p, nodes, arrow); err != nil {
		return nil, err
	}

	// Reactions (red) and loads (blue)
	for _, n := range nodes {
		if rc, ok := src.Reaction(n.ID); ok {
			if rc.HasX() {
				if err := addArrow(p, n.X, n.Y, *rc.X, 0, arrow, reactionColor, fmt.Sprintf("Rx=%.2f", *rc.X)); err != nil {
					return nil, err
				}
			}
			if rc.HasY() {
				if err := addArrow(p, n.X, n.Y, 0, *rc.Y, arrow, reactionColor, fmt.Sprintf("Ry=%.2f", *rc.Y)); err != nil {
					return nil, err
				}
			}
		}
		if err := addArrow(p, n.X, n.Y, n.Fx, 0, arrow, loadColor, fmt.Sprintf("Fx=%.2f", n.Fx)); err != nil {
			return nil, err
		}
		if err := addArrow(p, n.X, n.Y, 0, n.Fy, arrow, loadColor, fmt.Sprintf("Fy=%.2f", n.Fy)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// addSupports places a glyph just below each supported node
func addSupports(p *plot.Plot, nodes []truss.Node, offset float64) error {
	shapes := map[truss.Support]draw.GlyphDrawer{
		truss.SupportPin:     draw.TriangleGlyph{},
		truss.SupportRollerX: draw.BoxGlyph{},
		truss.SupportRollerY: draw.RingGlyph{},
	}
	for _, kind := range []truss.Support{truss.SupportPin, truss.SupportRollerX, truss.SupportRollerY} {
		var pts plotter.XYs
		for _, n := range nodes {
			if n.Support == kind {
				pts = append(pts, plotter.XY{X: n.X, Y: n.Y - offset/2})
			}
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.Black
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Shape = shapes[kind]
		p.Add(s)
		p.Legend.Add(kind.String(), s)
	}
	return nil
}

// addArrow draws an arrow from (x, y) along the sign of (fx, fy). Values
// below DisplayThreshold are not drawn.
func addArrow(p *plot.Plot, x, y, fx, fy, length float64, c color.Color, text string) error {
	mag := math.Hypot(fx, fy)
	if mag < DisplayThreshold {
		return nil
	}
	dx := length * signOf(fx)
	dy := length * signOf(fy)
	tipX, tipY := x+dx, y+dy

	shaft, err := plotter.NewLine(plotter.XYs{{X: x, Y: y}, {X: tipX, Y: tipY}})
	if err != nil {
		return err
	}
	shaft.LineStyle.Width = vg.Points(2)
	shaft.LineStyle.Color = c
	p.Add(shaft)

	// head: two strokes at ±30° back from the tip
	angle := math.Atan2(dy, dx)
	head := length * 0.35
	for _, a := range []float64{angle - math.Pi/6, angle + math.Pi/6} {
		stroke, err := plotter.NewLine(plotter.XYs{
			{X: tipX, Y: tipY},
			{X: tipX - head*math.Cos(a), Y: tipY - head*math.Sin(a)},
		})
		if err != nil {
			return err
		}
		stroke.LineStyle.Width = vg.Points(2)
		stroke.LineStyle.Color = c
		p.Add(stroke)
	}

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: tipX, Y: tipY}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Color = c
	}
	p.Add(lbl)
	return nil
}

func signOf(v float64) float64 {
	switch {
	case v > DisplayThreshold:
		return 1
	case v < -DisplayThreshold:
		return -1
	default:
		return 0
	}
}

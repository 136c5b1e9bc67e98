package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/nscp"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"gopkg.in/yaml.v3"
)

// Document is a truss definition as entered by a user: rows of free-form
// cells, one per node and one per member. Node ids are the row order.
type Document struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes       []NodeRow   `json:"nodes" yaml:"nodes"`
	Members     []MemberRow `json:"members" yaml:"members"`
}

// NodeRow is one node entry
type NodeRow struct {
	X       Cell `json:"x" yaml:"x"`
	Y       Cell `json:"y" yaml:"y"`
	Support Cell `json:"support" yaml:"support"` // "pin", "rollerx", "rollery" or anything else for none
	Fx      Cell `json:"fx" yaml:"fx"`
	Fy      Cell `json:"fy" yaml:"fy"`

	// Optional unfactored load cases keyed by load type (dead, live, ...)
	Cases map[string]LoadRow `json:"cases,omitempty" yaml:"cases,omitempty"`
}

// LoadRow is one unfactored nodal load
type LoadRow struct {
	Fx Cell `json:"fx" yaml:"fx"`
	Fy Cell `json:"fy" yaml:"fy"`
}

// MemberRow is one member entry
type MemberRow struct {
	Start Cell `json:"start" yaml:"start"`
	End   Cell `json:"end" yaml:"end"`
}

// ParseNodeRow builds a node from raw cell text. Unparsable numbers are 0.
func ParseNodeRow(id int, x, y, support, fx, fy string) truss.Node {
	return NodeRow{
		X:       Cell(x),
		Y:       Cell(y),
		Support: Cell(support),
		Fx:      Cell(fx),
		Fy:      Cell(fy),
	}.Node(id)
}

// ParseMemberRow builds a member from raw cell text. Ids are truncated
// toward zero; unparsable ids become 0.
func ParseMemberRow(start, end string) truss.Member {
	return MemberRow{Start: Cell(start), End: Cell(end)}.Member()
}

// Node converts the row into a truss node with the given id
func (r NodeRow) Node(id int) truss.Node {
	return truss.Node{
		ID:      id,
		X:       r.X.Float(),
		Y:       r.Y.Float(),
		Support: truss.ParseSupport(string(r.Support)),
		Fx:      r.Fx.Float(),
		Fy:      r.Fy.Float(),
	}
}

// Member converts the row into a truss member
func (r MemberRow) Member() truss.Member {
	return truss.Member{Start: r.Start.Int(), End: r.End.Int()}
}

// Model converts the document into a solver model
func (d *Document) Model() truss.Model {
	nodes := make([]truss.Node, len(d.Nodes))
	for i, row := range d.Nodes {
		nodes[i] = row.Node(i)
	}
	members := make([]truss.Member, len(d.Members))
	for i, row := range d.Members {
		members[i] = row.Member()
	}
	return truss.NewModel(nodes, members)
}

// LoadCases returns the unfactored load cases by node id. Keys are the
// load type names or their NSCP symbols (D, L, Lr, W, E, R) in any case.
// Unknown keys are ignored.
func (d *Document) LoadCases() map[int]nscp.LoadCases {
	cases := make(map[int]nscp.LoadCases)
	for i, row := range d.Nodes {
		for key, l := range row.Cases {
			t, ok := parseLoadType(key)
			if !ok {
				continue
			}
			if cases[i] == nil {
				cases[i] = make(nscp.LoadCases)
			}
			cases[i][t] = nscp.Load{Fx: l.Fx.Float(), Fy: l.Fy.Float()}
		}
	}
	return cases
}

// HasLoadCases reports whether any node defines load cases
func (d *Document) HasLoadCases() bool {
	for _, row := range d.Nodes {
		if len(row.Cases) > 0 {
			return true
		}
	}
	return false
}

var loadSymbols = map[string]nscp.LoadType{
	"d":  nscp.Dead,
	"l":  nscp.Live,
	"lr": nscp.Roof,
	"w":  nscp.Wind,
	"e":  nscp.Earthquake,
	"r":  nscp.Rain,
}

func parseLoadType(key string) (nscp.LoadType, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if t, ok := loadSymbols[key]; ok {
		return t, true
	}
	for _, lt := range nscp.LoadTypes {
		if string(lt) == key {
			return lt, true
		}
	}
	return "", false
}

// Decode parses a document in the given format ("json" or "yaml")
func Decode(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// LoadFromFile loads a truss document, picking the decoder from the file
// extension (.json, .yaml, .yml)
func LoadFromFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// FormatOf maps a file extension to a document format
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

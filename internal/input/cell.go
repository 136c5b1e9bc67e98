package input

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cell is a free-form table value. Whatever scalar the document holds is
// kept as text and only interpreted when read, so a malformed entry never
// fails a load.
type Cell string

// Float parses the cell leniently: empty or unparsable text is 0
func (c Cell) Float() float64 {
	return ParseFloat(string(c))
}

// Int parses the cell as a float and truncates it toward zero. NaN is 0
// and values outside the 32-bit range saturate at its bounds.
func (c Cell) Int() int {
	f := c.Float()
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// ParseFloat converts text to a number, defaulting to 0 on any failure
func ParseFloat(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return v
}

// UnmarshalJSON accepts strings, numbers, booleans and null
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = ""
			return nil
		}
		*c = Cell(s)
		return nil
	}
	if string(data) == "null" {
		*c = ""
		return nil
	}
	// numbers and anything else are kept verbatim
	*c = Cell(data)
	return nil
}

// UnmarshalYAML accepts any scalar; sequences and mappings read as empty
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*c = ""
		return nil
	}
	*c = Cell(node.Value)
	return nil
}

// MarshalJSON writes the cell back as a string
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

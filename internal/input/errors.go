package input

import "errors"

// Document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Errors are prefixed with "input:" and matched with errors.Is. Lenient
// cell parsing never produces an error; only unreadable or undecodable
// files do.
var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml and .yml
	ErrUnsupportedFormat = errors.New("input: unsupported document format")

	// ErrDecode wraps a syntax error from the JSON or YAML decoder
	ErrDecode = errors.New("input: cannot decode document")
)

package diagram

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// ExportOptions controls image export
type ExportOptions struct {
	Title  string  `validate:"max=120"`
	Width  float64 `validate:"gt=0,lte=100"` // inches
	Height float64 `validate:"gt=0,lte=100"` // inches
	Format string  `validate:"oneof=png svg pdf eps jpg jpeg tif tiff"`
}

// DefaultExportOptions returns an 8x6 inch PNG
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Title:  "Truss Analysis",
		Width:  8,
		Height: 6,
		Format: "png",
	}
}

// ResolveFilename fills Format from the file extension. A filename without
// extension gets ".png" appended.
func (o *ExportOptions) ResolveFilename(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		o.Format = "png"
		return filename + ".png"
	}
	o.Format = ext
	return filename
}

// Validate checks the options
func (o ExportOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ErrInvalidOptions is wrapped by every export option error
var ErrInvalidOptions = errors.New("diagram: invalid export options")

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "gt":
			return fmt.Errorf("%w: %s must be greater than %s", ErrInvalidOptions, field, param)
		case "lte", "max":
			return fmt.Errorf("%w: %s must not exceed %s", ErrInvalidOptions, field, param)
		case "oneof":
			return fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalidOptions, field, param, e.Value())
		default:
			return fmt.Errorf("%w: %s validation failed (%s)", ErrInvalidOptions, field, e.Tag())
		}
	}

	return err
}

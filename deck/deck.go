// Package deck defines the YAML description of presentation fragments the
// generator builds, and validation for it.
package deck

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"pml/schema"
)

// Shape kinds accepted in a deck description.
const (
	KindAutoShape   = "autoshape"
	KindPlaceholder = "placeholder"
	KindTextbox     = "textbox"
	KindPicture     = "picture"
	KindTable       = "table"
	KindChart       = "chart"
)

type (
	// CoreProps carries document metadata for the core properties part.
	// Zero values mean the property is not set.
	CoreProps struct {
		Title          string    `yaml:"title,omitempty"`
		Author         string    `yaml:"author,omitempty"`
		Subject        string    `yaml:"subject,omitempty"`
		Keywords       string    `yaml:"keywords,omitempty"`
		Comments       string    `yaml:"comments,omitempty"`
		Category       string    `yaml:"category,omitempty"`
		ContentStatus  string    `yaml:"content_status,omitempty"`
		Identifier     string    `yaml:"identifier,omitempty"`
		Language       string    `yaml:"language,omitempty"`
		LastModifiedBy string    `yaml:"last_modified_by,omitempty"`
		Version        string    `yaml:"version,omitempty"`
		Created        time.Time `yaml:"created,omitempty"`
		Modified       time.Time `yaml:"modified,omitempty"`
		LastPrinted    time.Time `yaml:"last_printed,omitempty"`
		Revision       int       `yaml:"revision,omitempty"`
	}

	// Geometry positions a shape on its slide, all values in EMU.
	Geometry struct {
		X  int64 `yaml:"x"`
		Y  int64 `yaml:"y"`
		CX int64 `yaml:"cx"`
		CY int64 `yaml:"cy"`
	}

	// Chart holds tabular data for a line chart. Headings has one label
	// per column, category column first.
	Chart struct {
		RelID      string      `yaml:"rel_id"`
		Headings   []string    `yaml:"headings"`
		Categories []string    `yaml:"categories"`
		Values     [][]float64 `yaml:"values"`
	}

	// Shape describes one shape on a slide. Kind selects which of the
	// optional field groups apply.
	Shape struct {
		Kind string `yaml:"kind"`
		Name string `yaml:"name,omitempty"`

		Geometry Geometry `yaml:"geometry,omitempty"`

		// autoshape
		Prst string `yaml:"prst,omitempty"`

		// placeholder
		PHType string `yaml:"ph_type,omitempty"`
		Orient string `yaml:"orient,omitempty"`
		Size   string `yaml:"sz,omitempty"`
		Index  int    `yaml:"idx,omitempty"`

		// picture
		Desc  string `yaml:"desc,omitempty"`
		RelID string `yaml:"rel_id,omitempty"`

		// table
		Rows    int    `yaml:"rows,omitempty"`
		Cols    int    `yaml:"cols,omitempty"`
		StyleID string `yaml:"style_id,omitempty"`

		// chart
		Chart *Chart `yaml:"chart,omitempty"`
	}

	Slide struct {
		Shapes []Shape `yaml:"shapes"`
	}

	// Deck is the root of a deck description file.
	Deck struct {
		Core   *CoreProps `yaml:"core,omitempty"`
		Slides []Slide    `yaml:"slides"`
	}
)

// Load reads and parses a deck description. Unknown fields are rejected so
// typos do not silently drop shapes.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read deck description: %w", err)
	}

	var d Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("unable to decode deck description: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

var phTypes = map[string]bool{
	schema.PHTypeBody:     true,
	schema.PHTypeChart:    true,
	schema.PHTypeCtrTitle: true,
	schema.PHTypeDate:     true,
	schema.PHTypeFooter:   true,
	schema.PHTypeObject:   true,
	schema.PHTypePicture:  true,
	schema.PHTypeSlideNum: true,
	schema.PHTypeSubtitle: true,
	schema.PHTypeTable:    true,
	schema.PHTypeTitle:    true,
}

// Validate checks the whole deck and reports every problem found, not just
// the first one.
func (d *Deck) Validate() error {
	var errs error
	if len(d.Slides) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("deck has no slides: %w", schema.ErrInvalidValue))
	}
	for i, slide := range d.Slides {
		if len(slide.Shapes) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("slide %d has no shapes: %w", i+1, schema.ErrInvalidValue))
		}
		for j, shape := range slide.Shapes {
			if err := shape.validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("slide %d shape %d: %w", i+1, j+1, err))
			}
		}
	}
	return errs
}

func (s *Shape) validate() error {
	var errs error

	needsGeometry := true
	switch s.Kind {
	case KindAutoShape:
		if len(s.Prst) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("autoshape needs prst: %w", schema.ErrInvalidValue))
		}
	case KindPlaceholder:
		needsGeometry = false
		if !phTypes[s.PHType] {
			errs = multierr.Append(errs, fmt.Errorf("unknown placeholder type %q: %w", s.PHType, schema.ErrInvalidValue))
		}
		if s.Index < 0 {
			errs = multierr.Append(errs, fmt.Errorf("negative placeholder idx %d: %w", s.Index, schema.ErrInvalidValue))
		}
	case KindTextbox:
	case KindPicture:
		if len(s.RelID) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("picture needs rel_id: %w", schema.ErrInvalidValue))
		}
	case KindTable:
		if s.Rows < 1 || s.Cols < 1 {
			errs = multierr.Append(errs, fmt.Errorf("table needs at least one row and column, got %dx%d: %w",
				s.Rows, s.Cols, schema.ErrInvalidValue))
		}
	case KindChart:
		if s.Chart == nil {
			errs = multierr.Append(errs, fmt.Errorf("chart shape needs chart data: %w", schema.ErrInvalidValue))
		} else {
			if len(s.Chart.RelID) == 0 {
				errs = multierr.Append(errs, fmt.Errorf("chart needs rel_id: %w", schema.ErrInvalidValue))
			}
			if len(s.Chart.Headings) != len(s.Chart.Values)+1 {
				errs = multierr.Append(errs, fmt.Errorf("chart has %d headings for %d value columns: %w",
					len(s.Chart.Headings), len(s.Chart.Values), schema.ErrInvalidValue))
			}
			for k, col := range s.Chart.Values {
				if len(col) != len(s.Chart.Categories) {
					errs = multierr.Append(errs, fmt.Errorf("chart value column %d has %d points for %d categories: %w",
						k, len(col), len(s.Chart.Categories), schema.ErrInvalidValue))
				}
			}
		}
	default:
		return fmt.Errorf("unknown shape kind %q: %w", s.Kind, schema.ErrInvalidValue)
	}

	if needsGeometry && (s.Geometry.CX <= 0 || s.Geometry.CY <= 0) {
		errs = multierr.Append(errs, fmt.Errorf("%s needs positive extents, got %dx%d: %w",
			s.Kind, s.Geometry.CX, s.Geometry.CY, schema.ErrInvalidValue))
	}
	if s.Geometry.X < 0 || s.Geometry.Y < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s has negative offset %d,%d: %w",
			s.Kind, s.Geometry.X, s.Geometry.Y, schema.ErrInvalidValue))
	}
	return errs
}

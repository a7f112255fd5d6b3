// Package config handles the configuration file and YAML polygon documents.
//
// Both share one structure: a config file may carry inline polygons, and a
// polygon document may carry render settings. JSON documents decode through
// the same path, since YAML is a superset of JSON.
package config

import (
	"io"
	"math"
	"os"

	"github.com/osuushi/polymetric/internal"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Render   Render    `yaml:"render,omitempty"`
	Reduce   float64   `yaml:"reduce,omitempty"`
	Polygons []Polygon `yaml:"polygons,omitempty"`
}

// Render overrides the default render options. Zero values leave the default
// in place.
type Render struct {
	Labels     *bool   `yaml:"labels,omitempty"`
	ScaleBar   *bool   `yaml:"scale_bar,omitempty"`
	Precision  *int    `yaml:"precision,omitempty"`
	Scale      float64 `yaml:"scale,omitempty"`
	Padding    float64 `yaml:"padding,omitempty"`
	LineWidth  float64 `yaml:"line_width,omitempty"`
	Background string  `yaml:"background,omitempty"`
	Fill       string  `yaml:"fill,omitempty"`
	Stroke     string  `yaml:"stroke,omitempty"`
	Text       string  `yaml:"text,omitempty"`
}

// Polygon is a named list of [x, y] pairs. Coordinates are decoded loosely so
// a bad entry can be reported by index instead of failing the whole document.
type Polygon struct {
	Name   string          `yaml:"name,omitempty"`
	Points [][]interface{} `yaml:"points"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &cfg, nil
}

// Decode reads a polygon document.
func Decode(in io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(in).Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	return &cfg, nil
}

// Apply lays the configured overrides over opts.
func (r Render) Apply(opts internal.RenderOptions) internal.RenderOptions {
	if r.Labels != nil {
		opts.Labels = *r.Labels
	}
	if r.ScaleBar != nil {
		opts.ScaleBar = *r.ScaleBar
	}
	if r.Precision != nil {
		opts.Precision = *r.Precision
	}
	if r.Scale > 0 {
		opts.Scale = r.Scale
	}
	if r.Padding > 0 {
		opts.Padding = r.Padding
	}
	if r.LineWidth > 0 {
		opts.LineWidth = r.LineWidth
	}
	if r.Background != "" {
		opts.Background = r.Background
	}
	if r.Fill != "" {
		opts.Fill = r.Fill
	}
	if r.Stroke != "" {
		opts.Stroke = r.Stroke
	}
	if r.Text != "" {
		opts.Text = r.Text
	}
	return opts
}

// PolygonList converts every configured polygon.
func (c *Config) PolygonList() (internal.PolygonList, error) {
	list := make(internal.PolygonList, 0, len(c.Polygons))
	for i, p := range c.Polygons {
		poly, err := p.Polygon()
		if err != nil {
			name := p.Name
			if name == "" {
				return nil, errors.Wrapf(err, "yaml polygon %d", i)
			}
			return nil, errors.Wrapf(err, "yaml polygon %d (%s)", i, name)
		}
		list = append(list, poly)
	}
	return list, nil
}

// Polygon checks every pair. A pair shorter than two entries is a missing
// coordinate; anything that is not a finite number is rejected.
func (p Polygon) Polygon() (internal.Polygon, error) {
	points := make([]*internal.Point, 0, len(p.Points))
	for i, pair := range p.Points {
		switch {
		case len(pair) == 0:
			return internal.Polygon{}, &internal.InvalidInputError{Index: i, Field: "x", Reason: "is missing"}
		case len(pair) == 1:
			return internal.Polygon{}, &internal.InvalidInputError{Index: i, Field: "y", Reason: "is missing"}
		case len(pair) > 2:
			return internal.Polygon{}, &internal.InvalidInputError{Index: i, Reason: "expected 2 coordinates"}
		}
		x, err := coordinate(pair[0], i, "x")
		if err != nil {
			return internal.Polygon{}, err
		}
		y, err := coordinate(pair[1], i, "y")
		if err != nil {
			return internal.Polygon{}, err
		}
		points = append(points, &internal.Point{X: x, Y: y})
	}
	return internal.Polygon{Name: p.Name, Points: points}, nil
}

func coordinate(v interface{}, index int, field string) (float64, error) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, &internal.InvalidInputError{Index: index, Field: field, Reason: "is not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &internal.InvalidInputError{Index: index, Field: field, Reason: "is not a finite number"}
	}
	return f, nil
}

package internal

import (
	"image"
	"math"
	"regexp"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Padding around the shapes so edge labels have room
const defaultDrawPadding = 40

// Largest width or height Layout will produce, in pixels.
const maxDrawDimension = 16384

// #rgb, #rrggbb or #rrggbbaa, the forms gg.SetHexColor parses. Colors end up
// inside svg attributes, so nothing else gets through.
var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

type RenderOptions struct {
	Scale      float64
	Padding    float64
	LineWidth  float64
	Precision  int
	Labels     bool
	ScaleBar   bool
	Background string
	Fill       string
	Stroke     string
	Text       string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:      4,
		Padding:    defaultDrawPadding,
		LineWidth:  2,
		Precision:  2,
		Labels:     true,
		ScaleBar:   true,
		Background: "#000000",
		Fill:       "#008000",
		Stroke:     "#00ffff",
		Text:       "#ffffff",
	}
}

// Drawing is a polygon list laid out in pixel space, y flipped so the origin
// of the geometry sits at the bottom left. The same layout feeds the raster
// and the svg encoders.
type Drawing struct {
	Width   int
	Height  int
	Options RenderOptions
	Paths   [][]Point
	Labels  []Label
	Bar     *ScaleBar
}

type Label struct {
	X, Y   float64
	AX, AY float64
	Text   string
}

type ScaleBar struct {
	X1, X2, Y float64
	Text      string
}

// Lay out the list for drawing. Polygons must be valid; an invalid point is
// reported the same way the metrics report it.
func Layout(pl PolygonList, opts RenderOptions) (drawing *Drawing, err error) {
	defer recoverInto(&err)
	for _, poly := range pl {
		validate(poly.Points)
	}
	if opts.Scale <= 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		fatalf("render scale must be positive, got %v", opts.Scale)
	}
	checkColors(opts)

	minX, minY, maxX, maxY := pl.Bounds()
	width := math.Ceil(opts.Scale*(maxX-minX) + opts.Padding*2)
	height := math.Ceil(opts.Scale*(maxY-minY) + opts.Padding*2)
	// Also catches NaN, which fails every comparison.
	if !(width <= maxDrawDimension && height <= maxDrawDimension) {
		fatalf("drawing would be %vx%v pixels, larger than %d", width, height, maxDrawDimension)
	}
	drawing = &Drawing{
		Width:   int(width),
		Height:  int(height),
		Options: opts,
	}
	if drawing.Width < 1 {
		drawing.Width = 1
	}
	if drawing.Height < 1 {
		drawing.Height = 1
	}

	project := func(p Point) Point {
		return Point{
			X: opts.Padding + opts.Scale*(p.X-minX),
			Y: float64(drawing.Height) - (opts.Padding + opts.Scale*(p.Y-minY)),
		}
	}

	for _, poly := range pl {
		if len(poly.Points) == 0 {
			continue
		}
		path := make([]Point, len(poly.Points))
		for i, p := range poly.Points {
			path[i] = project(*p)
		}
		drawing.Paths = append(drawing.Paths, path)

		if !opts.Labels || len(poly.Points) < 2 {
			continue
		}
		for _, edge := range poly.Edges() {
			mid := project(edge.Midpoint())
			drawing.Labels = append(drawing.Labels, Label{
				X: mid.X, Y: mid.Y, AX: 0.5, AY: 0.5,
				Text: formatLength(edge.Length(), opts.Precision),
			})
		}
		center := project(poly.Centroid())
		drawing.Labels = append(drawing.Labels, Label{
			X: center.X, Y: center.Y, AX: 0.5, AY: 0.5,
			Text: "A=" + formatLength(math.Abs(doubleSignedArea(poly.Points))/2, opts.Precision),
		})
	}

	if opts.ScaleBar && maxX > minX {
		length := niceLength((maxX - minX) / 4)
		y := float64(drawing.Height) - opts.Padding/2
		drawing.Bar = &ScaleBar{
			X1:   opts.Padding,
			X2:   opts.Padding + length*opts.Scale,
			Y:    y,
			Text: formatLength(length, opts.Precision),
		}
	}
	return drawing, nil
}

func checkColors(opts RenderOptions) {
	colors := []struct{ name, value string }{
		{"background", opts.Background},
		{"fill", opts.Fill},
		{"stroke", opts.Stroke},
		{"text", opts.Text},
	}
	for _, c := range colors {
		if !hexColorPattern.MatchString(c.value) {
			fatalf("%s color must be a hex color like #00ff00, got %q", c.name, c.value)
		}
	}
}

// Round down to 1, 2 or 5 times a power of ten, the usual scale bar steps.
func niceLength(target float64) float64 {
	if target <= 0 {
		return 0
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(target)))
	for _, step := range []float64{5, 2, 1} {
		if step*magnitude <= target {
			return step * magnitude
		}
	}
	return magnitude
}

func formatLength(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Rasterize the drawing. Fills use the even-odd rule so nested loops show as
// holes.
func (d *Drawing) Context() *gg.Context {
	opts := d.Options
	c := gg.NewContext(d.Width, d.Height)
	c.SetHexColor(opts.Background)
	c.Clear()
	c.SetFillRuleEvenOdd()

	c.SetLineWidth(opts.LineWidth)
	for _, path := range d.Paths {
		c.MoveTo(path[0].X, path[0].Y)
		for _, p := range path[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetHexColor(opts.Fill)
	c.FillPreserve()
	c.SetHexColor(opts.Stroke)
	c.Stroke()

	c.SetFontFace(basicfont.Face7x13)
	c.SetHexColor(opts.Text)
	for _, label := range d.Labels {
		c.DrawStringAnchored(label.Text, label.X, label.Y, label.AX, label.AY)
	}

	if d.Bar != nil {
		c.SetLineWidth(1)
		c.DrawLine(d.Bar.X1, d.Bar.Y, d.Bar.X2, d.Bar.Y)
		c.DrawLine(d.Bar.X1, d.Bar.Y-4, d.Bar.X1, d.Bar.Y+4)
		c.DrawLine(d.Bar.X2, d.Bar.Y-4, d.Bar.X2, d.Bar.Y+4)
		c.Stroke()
		c.DrawStringAnchored(d.Bar.Text, d.Bar.X2+6, d.Bar.Y, 0, 0.35)
	}
	return c
}

func (d *Drawing) Image() image.Image {
	return d.Context().Image()
}

// Draw is Layout followed by rasterization.
func (pl PolygonList) Draw(opts RenderOptions) (image.Image, error) {
	drawing, err := Layout(pl, opts)
	if err != nil {
		return nil, err
	}
	return drawing.Image(), nil
}

package internal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

var svgTemplate = template.Must(template.New("drawing").Funcs(template.FuncMap{
	"f": func(v float64) string { return formatLength(v, 2) },
	"anchor": func(ax float64) string {
		switch {
		case ax < 0.25:
			return "start"
		case ax > 0.75:
			return "end"
		}
		return "middle"
	},
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<rect width="{{.Width}}" height="{{.Height}}" fill="{{.Options.Background}}"/>
<path fill="{{.Options.Fill}}" fill-rule="evenodd" stroke="{{.Options.Stroke}}" stroke-width="{{f .Options.LineWidth}}" d="{{range .Paths}}M{{range $i, $p := .}}{{if $i}} L{{end}}{{f $p.X}} {{f $p.Y}}{{end}} Z {{end}}"/>
{{range .Labels}}<text x="{{f .X}}" y="{{f .Y}}" text-anchor="{{anchor .AX}}" dominant-baseline="middle" font-family="monospace" font-size="13" fill="{{$.Options.Text}}">{{.Text}}</text>
{{end}}{{with .Bar}}<path stroke="{{$.Options.Stroke}}" stroke-width="1" d="M{{f .X1}} {{f .Y}} L{{f .X2}} {{f .Y}}"/>
<text x="{{f .X2}}" y="{{f .Y}}" dx="6" dominant-baseline="middle" font-family="monospace" font-size="13" fill="{{$.Options.Text}}">{{.Text}}</text>
{{end}}</svg>
`))

func (d *Drawing) EncodePNG(w io.Writer) error {
	return d.Context().EncodePNG(w)
}

func (d *Drawing) EncodeWebP(w io.Writer) error {
	return webp.Encode(w, d.Image(), &webp.Options{Lossless: true})
}

// EncodeSVG writes the vector form of the drawing, minified.
// Colors go into attributes unescaped, so a drawing not built by Layout is
// checked again here.
func (d *Drawing) EncodeSVG(w io.Writer) (err error) {
	defer recoverInto(&err)
	checkColors(d.Options)
	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, d); err != nil {
		return errors.Wrap(err, "rendering svg")
	}
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	if err := m.Minify(svgMediaType, w, &buf); err != nil {
		return errors.Wrap(err, "minifying svg")
	}
	return nil
}

func (d *Drawing) encoderFor(path string) (func(io.Writer) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return d.EncodePNG, nil
	case ".webp":
		return d.EncodeWebP, nil
	case ".svg":
		return d.EncodeSVG, nil
	default:
		return nil, errors.Errorf("unsupported output format %q", ext)
	}
}

// Encode picks the format from the file extension: .png, .webp or .svg.
func (d *Drawing) Encode(w io.Writer, path string) error {
	encode, err := d.encoderFor(path)
	if err != nil {
		return err
	}
	return encode(w)
}

func (d *Drawing) Save(path string) (err error) {
	encode, err := d.encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	return encode(f)
}

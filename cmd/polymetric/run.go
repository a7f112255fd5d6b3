package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/polymetric/dbg"
	"github.com/osuushi/polymetric/internal"
	"github.com/osuushi/polymetric/internal/config"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func run(opts Options, stdin io.Reader, stdout io.Writer) error {
	// The preview is escape sequences on stdout, which would corrupt the JSON
	if opts.JSON && opts.Imgcat {
		return errors.New("--imgcat cannot be combined with --json")
	}

	cfg := &config.Config{}
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return errors.Wrap(err, "loading configuration")
		}
		cfg = loaded
	}

	list, err := cfg.PolygonList()
	if err != nil {
		return err
	}
	// Inline polygons from the config stand in for stdin
	if len(opts.Args.Files) > 0 || len(list) == 0 {
		inputs, err := readInputs(opts.Args.Files, opts.Format, stdin)
		if err != nil {
			return err
		}
		list = append(list, inputs...)
	}

	for i := range list {
		if list[i].Name == "" {
			list[i].Name = dbg.Name(&list[i])
		}
	}

	if opts.NDC != "" {
		width, height, err := parseSize(opts.NDC)
		if err != nil {
			return err
		}
		for i := range list {
			points, err := internal.ToImageCoordinates(list[i].Points, width, height)
			if err != nil {
				return errors.Wrapf(err, "polygon %d (%s)", i, list[i].Name)
			}
			list[i].Points = points
		}
	}

	reduce := cfg.Reduce
	if opts.Reduce > 0 {
		reduce = opts.Reduce
	}
	if reduce > 0 {
		for i := range list {
			reduced, err := list[i].Reduce(reduce)
			if err != nil {
				return errors.Wrapf(err, "polygon %d (%s)", i, list[i].Name)
			}
			log.Debug().
				Str("polygon", reduced.Name).
				Int("before", len(list[i].Points)).
				Int("after", len(reduced.Points)).
				Msg("Reduced points")
			list[i] = reduced
		}
	}

	rows, err := measure(list)
	if err != nil {
		return err
	}
	log.Info().Int("polygons", len(rows)).Msg("Measured polygons")

	if opts.JSON {
		err = writeJSONReport(stdout, rows)
	} else {
		err = writeReport(stdout, rows, !opts.NoColor)
	}
	if err != nil {
		return errors.Wrap(err, "writing report")
	}

	if opts.Output == "" && !opts.Imgcat {
		return nil
	}
	renderOpts := cfg.Render.Apply(internal.DefaultRenderOptions())
	if opts.Scale > 0 {
		renderOpts.Scale = opts.Scale
	}
	return render(list, renderOpts, opts.Output, opts.Imgcat, stdout)
}

func measure(list internal.PolygonList) ([]row, error) {
	rows := make([]row, 0, len(list))
	for i, poly := range list {
		m, err := poly.Measure()
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d (%s)", i, poly.Name)
		}
		log.Debug().
			Str("polygon", poly.Name).
			Int("points", m.Points).
			Float64("perimeter", m.Perimeter).
			Float64("area", m.Area).
			Stringer("winding", m.Winding).
			Msg("Measured polygon")
		rows = append(rows, row{Name: poly.Name, Metrics: m, Winding: m.Winding.String()})
	}
	return rows, nil
}

func render(list internal.PolygonList, renderOpts internal.RenderOptions, output string, preview bool, stdout io.Writer) error {
	drawing, err := internal.Layout(list, renderOpts)
	if err != nil {
		return err
	}

	if output != "" {
		if err := drawing.Save(output); err != nil {
			return err
		}
		log.Info().
			Str("path", output).
			Int("width", drawing.Width).
			Int("height", drawing.Height).
			Msg("Rendered polygons")
	}

	if !preview {
		return nil
	}
	path := output
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		f, err := os.CreateTemp("", "polymetric-*.png")
		if err != nil {
			return errors.Wrap(err, "creating preview")
		}
		defer os.Remove(f.Name())
		err = drawing.EncodePNG(f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Wrap(err, "writing preview")
		}
		path = f.Name()
	}
	imgcat.CatFile(path, stdout)
	return nil
}

func logError(err error) {
	event := log.Error().Err(err)
	var invalid *internal.InvalidInputError
	if errors.As(err, &invalid) {
		event = event.Int("index", invalid.Index)
		if invalid.Field != "" {
			event = event.Str("field", invalid.Field)
		}
	}
	event.Msg("Failed to measure polygons")
}

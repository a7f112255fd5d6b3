package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osuushi/polymetric/internal"

	"github.com/logrusorgru/aurora"
)

type row struct {
	Name string `json:"name"`
	internal.Metrics
	Winding string `json:"winding"`
}

type jsonReport struct {
	Polygons       []row   `json:"polygons"`
	TotalPerimeter float64 `json:"total_perimeter"`
	TotalArea      float64 `json:"total_area"`
}

func totals(rows []row) (perimeter, area float64) {
	for _, r := range rows {
		perimeter += r.Perimeter
		area += r.Area
	}
	return perimeter, area
}

func writeReport(w io.Writer, rows []row, color bool) error {
	au := aurora.NewAurora(color)

	if _, err := fmt.Fprintf(w, "%s\n", au.Bold(fmt.Sprintf("%-24s %6s %14s %14s %-10s", "POLYGON", "POINTS", "PERIMETER", "AREA", "WINDING"))); err != nil {
		return err
	}
	for _, r := range rows {
		var winding aurora.Value
		switch r.Metrics.Winding {
		case internal.CounterClockwise:
			winding = au.Green(r.Winding)
		case internal.Clockwise:
			winding = au.Yellow(r.Winding)
		default:
			winding = au.Red(r.Winding)
		}
		_, err := fmt.Fprintf(w, "%s %6d %14.4f %14.4f %s\n",
			au.Cyan(fmt.Sprintf("%-24s", r.Name)),
			r.Points,
			r.Perimeter,
			r.Area,
			winding,
		)
		if err != nil {
			return err
		}
	}

	perimeter, area := totals(rows)
	_, err := fmt.Fprintf(w, "%s %6s %14.4f %14.4f\n", au.Bold(fmt.Sprintf("%-24s", "TOTAL")), "", perimeter, area)
	return err
}

func writeJSONReport(w io.Writer, rows []row) error {
	perimeter, area := totals(rows)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Polygons: rows, TotalPerimeter: perimeter, TotalArea: area})
}

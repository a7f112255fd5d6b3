package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/polymetric/internal"
	"github.com/osuushi/polymetric/internal/config"

	"github.com/pkg/errors"
)

const (
	formatAuto = "auto"
	formatText = "text"
	formatSVG  = "svg"
	formatYAML = "yaml"
)

// Read every input, stdin when no files are given.
func readInputs(files []string, format string, stdin io.Reader) (internal.PolygonList, error) {
	if len(files) == 0 {
		return readInput(stdin, "", format)
	}

	var list internal.PolygonList
	for _, path := range files {
		polygons, err := readFile(path, format)
		if err != nil {
			return nil, err
		}
		list = append(list, polygons...)
	}
	return list, nil
}

func readFile(path, format string) (internal.PolygonList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, err := readInput(f, path, format)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return list, nil
}

func readInput(in io.Reader, path, format string) (internal.PolygonList, error) {
	br := bufio.NewReader(in)
	if format == formatAuto {
		format = detectFormat(path, br)
	}

	switch format {
	case formatSVG:
		return internal.ReadSVG(br)
	case formatYAML:
		cfg, err := config.Decode(br)
		if err != nil {
			return nil, err
		}
		return cfg.PolygonList()
	default:
		return internal.ReadPolygons(br)
	}
}

// The extension decides when there is one. Otherwise the first non-blank,
// non-comment byte does: '<' is svg, anything that cannot start a number is
// yaml, and the rest is plain text.
func detectFormat(path string, br *bufio.Reader) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return formatSVG
	case ".yaml", ".yml", ".json":
		return formatYAML
	case ".txt":
		return formatText
	}

	head, _ := br.Peek(4096)
	for _, line := range bytes.Split(head, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		switch c := rune(line[0]); {
		case c == '<':
			return formatSVG
		case unicode.IsDigit(c) || c == '-' || c == '+' || c == '.':
			return formatText
		default:
			return formatYAML
		}
	}
	return formatText
}

// Parse a WxH size for the --ndc option.
func parseSize(s string) (width, height float64, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid size %q, expected WxH", s)
	}
	width, err = strconv.ParseFloat(parts[0], 64)
	if err != nil || width <= 0 {
		return 0, 0, errors.Errorf("invalid width in %q", s)
	}
	height, err = strconv.ParseFloat(parts[1], 64)
	if err != nil || height <= 0 {
		return 0, 0, errors.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}

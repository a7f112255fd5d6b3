// Command polymetric measures polygons: perimeter, area and winding for every
// polygon it reads, optionally rendering an annotated image.
//
// Input comes from the files named on the command line, or stdin when there
// are none. Text input is newline separated points in the form "x y", with
// each polygon separated by an extra newline. SVG <polygon> elements and YAML
// or JSON documents ({polygons: [{name, points: [[x, y], ...]}]}) work too.
package main

import (
	"os"

	"github.com/osuushi/polymetric/internal/logger"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config"   env:"POLYMETRIC_CONFIG" description:"Path to configuration file"`
	Format     string  `short:"f" long:"format"   env:"POLYMETRIC_FORMAT" description:"Input format" choice:"auto" choice:"text" choice:"svg" choice:"yaml" default:"auto"`
	Output     string  `short:"o" long:"output"   description:"Render annotated polygons to a .png, .webp or .svg file"`
	Imgcat     bool    `long:"imgcat"             description:"Preview the rendered polygons inline in the terminal (not with --json)"`
	Scale      float64 `short:"s" long:"scale"    description:"Pixels per unit when rendering"`
	Reduce     float64 `short:"r" long:"reduce"   description:"Drop points closer than this to their predecessor before measuring"`
	NDC        string  `long:"ndc"                description:"Treat input as normalized device coordinates mapped onto a WxH image"`
	NoColor    bool    `long:"no-color"           description:"Disable colors in the report"`
	JSON       bool    `short:"j" long:"json"     description:"Print the report as JSON"`

	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		logError(err)
		os.Exit(1)
	}
}

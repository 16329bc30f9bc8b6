package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convex"
	"github.com/osuushi/convex/dbg"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the overlap test. Input on stdin should be newline separated points
// in the form "x y", with each polygon separated by an extra newline. Every
// pair of polygons is printed with its verdict, and the scene can be rendered
// to a PNG.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	output     string
	scale      float64
	inline     bool
	noColor    bool
	verbose    bool
	rotate     float64
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	app := kingpin.New("satcheck", "Report which convex polygons read from stdin overlap.")
	app.Writer(stderr)
	app.Terminate(nil)
	app.Flag("config", "YAML config file.").ExistingFileVar(&f.configPath)
	app.Flag("png", "Render the polygons to this PNG file.").StringVar(&f.output)
	app.Flag("scale", "Pixels per unit when rendering.").Float64Var(&f.scale)
	app.Flag("imgcat", "Also print the rendered PNG to the terminal (iTerm only).").BoolVar(&f.inline)
	app.Flag("no-color", "Disable colored output.").BoolVar(&f.noColor)
	app.Flag("verbose", "Log at debug level.").Short('v').BoolVar(&f.verbose)
	app.Flag("rotate", "Rotate every polygon about its centroid by this many degrees.").Float64Var(&f.rotate)
	_, err := app.Parse(args)
	return f, err
}

// Flags override the config file, but only when given.
func (f flags) apply(config *Config) {
	if f.output != "" {
		config.Render.Output = f.output
	}
	if f.scale != 0 {
		config.Render.Scale = f.scale
	}
	if f.inline {
		config.Render.Inline = true
	}
	if f.noColor {
		config.Color = false
	}
	if f.verbose {
		config.LogLevel = "debug"
	}
	if f.rotate != 0 {
		config.Rotate = f.rotate
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "satcheck:", err)
		return 2
	}

	config := DefaultConfig()
	if f.configPath != "" {
		config, err = LoadConfig(f.configPath)
		if err != nil {
			fmt.Fprintln(stderr, "satcheck:", err)
			return 2
		}
	}
	f.apply(&config)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(stderr, "satcheck:", err)
		return 2
	}
	level, _ := config.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	au := aurora.NewAurora(config.Color)

	pointLists, err := readPolygons(stdin)
	if err != nil {
		logger.Error("could not read polygons", "err", err)
		return 1
	}
	logger.Debug("read polygons", "count", len(pointLists))

	status := 0
	var polygons []*convex.Polygon
	var indexes []int
	for i, points := range pointLists {
		poly, err := convex.New(points...)
		if err != nil {
			logger.Error("invalid polygon", "index", i, "points", len(points), "err", err)
			status = 1
			continue
		}
		if config.Rotate != 0 {
			if err := poly.Rotate(config.Rotate * math.Pi / 180); err != nil {
				logger.Error("could not rotate polygon", "index", i, "err", err)
				status = 1
				continue
			}
		}
		logger.Debug("built polygon", "index", i, "polygon", dbg.Describe(poly))
		polygons = append(polygons, poly)
		indexes = append(indexes, i)
	}

	for a := range polygons {
		for b := a + 1; b < len(polygons); b++ {
			verdict := au.Green("disjoint")
			if convex.Intersects(polygons[a], polygons[b]) {
				verdict = au.Red("intersect")
			}
			fmt.Fprintf(stdout, "%d %d %s\n", indexes[a], indexes[b], verdict.String())
		}
	}

	if config.Render.Output != "" {
		if err := dbg.DrawFile(config.Render.Output, config.Render.Scale, polygons...); err != nil {
			logger.Error("could not render", "path", config.Render.Output, "err", err)
			return 1
		}
		logger.Info("rendered", "path", config.Render.Output, "polygons", len(polygons))
		if config.Render.Inline {
			dbg.Show(config.Render.Output)
		}
	}
	return status
}

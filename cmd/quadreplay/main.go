package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quadedit/interaction"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Replays a scripted gesture stream against a quadrilateral loaded from an
// SVG file. The script on stdin has one sample per line:
//
//	start X Y
//	move X Y
//	end
//
// Blank lines and lines starting with # are ignored.

var (
	app        = kingpin.New("quadreplay", "Replay touch gestures against an adjustable quadrilateral.")
	configPath = app.Flag("config", "YAML or TOML engine config.").Short('c').ExistingFile()
	radius     = app.Flag("radius", "Corner touch radius: none, low, medium, high, or a number.").String()
	pngPath    = app.Flag("png", "Write the final quadrilateral to this PNG file.").String()
	width      = app.Flag("width", "Width of the PNG.").Default("400").Int()
	height     = app.Flag("height", "Height of the PNG.").Default("700").Int()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	showImage  = app.Flag("imgcat", "Print the final quadrilateral to the terminal (iTerm only).").Bool()
	verbose    = app.Flag("verbose", "Log engine activity to stderr.").Short('v').Bool()
	quadPath   = app.Arg("quad", "SVG file whose first polygon is the quadrilateral.").Required().ExistingFile()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	if *verbose {
		interaction.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Stdin, os.Stdout, au); err != nil {
		fmt.Fprintln(os.Stderr, au.Red(err))
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, au aurora.Aurora) error {
	coords, err := loadQuad(*quadPath)
	if err != nil {
		return err
	}

	conf := interaction.DefaultConfig()
	if *configPath != "" {
		if conf, err = interaction.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *radius != "" {
		conf.TouchRadius = *radius
	}

	controller, err := interaction.NewControllerFromConfig(&coords, conf)
	if err != nil {
		return err
	}
	controller.OnCornerUpdate = func(c interaction.DetachedCorner) {
		fmt.Fprintf(out, "  %s %s\n", au.Green("commit"), c)
	}

	if err := replay(in, out, au, controller); err != nil {
		return err
	}

	fmt.Fprintln(out, au.Bold("final"))
	for corner := range interaction.Corners(&coords) {
		fmt.Fprintf(out, "  %-12s %s\n", corner.Position, corner.Point())
	}

	if *showImage {
		if err := interaction.DebugDraw(&coords, controller.Engine(), *width, *height); err != nil {
			return err
		}
	}
	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		if err != nil {
			return errors.Wrap(err, "create png")
		}
		defer f.Close()
		if err := interaction.RenderPNG(f, &coords, controller.Engine(), *width, *height); err != nil {
			return err
		}
	}
	return nil
}

func loadQuad(path string) (interaction.Coords, error) {
	f, err := os.Open(path)
	if err != nil {
		return interaction.Coords{}, errors.Wrap(err, "open quad")
	}
	defer f.Close()
	return interaction.LoadCoordsSVG(f)
}

func replay(in io.Reader, out io.Writer, au aurora.Aurora, controller *interaction.Controller) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "start", "move":
			x, y, err := parseXY(fields[1:])
			if err != nil {
				return errors.Wrapf(err, "line %d", lineNo)
			}
			if fields[0] == "start" {
				sel := controller.Start(x, y)
				fmt.Fprintf(out, "%s (%g, %g) -> %s\n", au.Cyan("start"), x, y, au.Yellow(sel))
			} else if !controller.Move(x, y) {
				fmt.Fprintf(out, "%s (%g, %g) %s\n", au.Cyan("move"), x, y, au.Faint("ignored"))
			}
		case "end":
			fmt.Fprintln(out, au.Cyan("end"))
			controller.End()
		default:
			return errors.Errorf("line %d: unknown command %q", lineNo, fields[0])
		}
	}
	return errors.Wrap(scanner.Err(), "read script")
}

func parseXY(args []string) (x, y float64, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("want 2 coordinates, got %d", len(args))
	}
	if x, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, errors.Wrapf(err, "invalid x value %q", args[0])
	}
	if y, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, errors.Wrapf(err, "invalid y value %q", args[1])
	}
	return x, y, nil
}

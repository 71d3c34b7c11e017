// Command glyphtrace traces glyph images and simplifies glyph outlines.
//
// Images named on the command line are traced and simplified. Without
// images, the glyphs for -text are read from a font instead and simplified.
// The results are written as an SVG document, one glyph after the other.
//
// Usage:
//
//	glyphtrace [flags] [image ...]
//
// Supported image formats are PNG, JPEG, GIF, BMP and TIFF.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	_ "golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
	"honnef.co/go/tracer"
	"honnef.co/go/tracer/fontglyph"
	"honnef.co/go/tracer/trace"
)

func main() {
	var (
		configFile = flag.String("config", "", "YAML settings file")
		fontFile   = flag.String("font", "", "font to read glyphs from (default Go Regular)")
		text       = flag.String("text", "Tracer", "glyphs to read from the font")
		output     = flag.String("o", "", "output SVG file (default standard output)")
		verbose    = flag.Bool("v", false, "log every filter step")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [image ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	tracer.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, *configFile, *fontFile, *text, flag.Args(), *output)
	stop()
	if err != nil {
		logger.Error("glyphtrace failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, fontFile, text string, images []string, output string) error {
	cfg, err := readConfigFile(configFile)
	if err != nil {
		return err
	}

	var sources []source
	if len(images) > 0 {
		for _, name := range images {
			sources = append(sources, imageSource{path: name, params: cfg.params()})
		}
	} else {
		f, err := loadFont(fontFile)
		if err != nil {
			return err
		}
		for _, r := range text {
			sources = append(sources, glyphSource{font: f, r: r})
		}
	}

	glyphs, err := process(ctx, sources, tracer.NewSimplifier(cfg.options()))
	if err != nil {
		return err
	}

	if output == "" {
		return writeSVG(os.Stdout, glyphs)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeSVG(f, glyphs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadFont(filename string) (*sfnt.Font, error) {
	data := goregular.TTF
	if filename != "" {
		var err error
		data, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", filename, err)
	}
	return f, nil
}

// glyph is a simplified outline ready to be written.
type glyph struct {
	name    string
	advance float64
	outline tracer.Outline
	stats   tracer.Stats
}

// source produces an outline to simplify.
type source interface {
	name() string
	load() (tracer.Drawer, float64, error)
}

type glyphSource struct {
	font *sfnt.Font
	r    rune
}

func (s glyphSource) name() string { return fmt.Sprintf("%q", s.r) }

func (s glyphSource) load() (tracer.Drawer, float64, error) {
	g, err := fontglyph.Load(s.font, s.r)
	if err != nil {
		return nil, 0, err
	}
	return g, g.Advance(), nil
}

type imageSource struct {
	path   string
	params trace.Params
}

func (s imageSource) name() string { return s.path }

func (s imageSource) load() (tracer.Drawer, float64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	o, err := trace.Image(img, s.params)
	if err != nil {
		return nil, 0, fmt.Errorf("tracing %s: %w", s.path, err)
	}
	tracer.Logger().Debug("decoded image", "path", s.path, "format", format, "bounds", img.Bounds())
	advance := float64(img.Bounds().Dx()) * s.params.Transform.N0
	return o, advance, nil
}

// process loads and simplifies every source concurrently. The results are in
// the order of sources.
func process(ctx context.Context, sources []source, s *tracer.Simplifier) ([]glyph, error) {
	glyphs := make([]glyph, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			d, advance, err := src.load()
			if err != nil {
				return err
			}
			var rec tracer.Recorder
			stats, err := s.Simplify(ctx, d, &rec)
			if err != nil {
				return fmt.Errorf("simplifying %s: %w", src.name(), err)
			}
			o, err := rec.Outline()
			if err != nil {
				return fmt.Errorf("simplifying %s: %w", src.name(), err)
			}
			glyphs[i] = glyph{name: src.name(), advance: advance, outline: o, stats: stats}
			tracer.Logger().Info("processed glyph",
				"glyph", src.name(),
				"contours", stats.ContoursAfter,
				"points_before", stats.PointsBefore,
				"points_after", stats.PointsAfter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return glyphs, nil
}

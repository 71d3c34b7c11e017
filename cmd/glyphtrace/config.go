package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/curve"
	"honnef.co/go/tracer"
	"honnef.co/go/tracer/trace"
)

// config holds the settings for tracing and simplifying. Keys missing from
// the settings file keep their default values.
type config struct {
	Trace    traceConfig
	Simplify simplifyConfig
}

type traceConfig struct {
	// Luminance below which pixels are ink, in [0, 1].
	Threshold float64
	Invert    bool
	// Blur radius in pixels, 0 disables blurring.
	Blur      float64
	TurdSize  int `yaml:"turdSize"`
	Tolerance float64
	AlphaMax  float64 `yaml:"alphaMax"`
	// Scale and offset map image pixels to font units.
	Scale   float64
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

type simplifyConfig struct {
	RemoveOverlappingPoints    bool    `yaml:"removeOverlappingPoints"`
	RoundToIntegers            bool    `yaml:"roundToIntegers"`
	MinimumContourSegments     int     `yaml:"minimumContourSegments"`
	MinimumContourArea         float64 `yaml:"minimumContourArea"`
	MinimumCurveLength         float64 `yaml:"minimumCurveLength"`
	DouglasPeuckerTolerance    float64 `yaml:"douglasPeuckerTolerance"`
	VisvalingamWhyattTolerance float64 `yaml:"visvalingamWhyattTolerance"`
	ShallowCurveTolerance      float64 `yaml:"shallowCurveTolerance"`
	SpikeTolerance             float64 `yaml:"spikeTolerance"`
	Concurrency                int
}

func defaultConfig() *config {
	p := trace.DefaultParams
	o := tracer.DefaultOptions
	return &config{
		Trace: traceConfig{
			Threshold: p.Threshold,
			Invert:    p.Invert,
			Blur:      p.Blur,
			TurdSize:  p.TurdSize,
			Tolerance: p.Tolerance,
			AlphaMax:  p.AlphaMax,
			Scale:     1,
		},
		Simplify: simplifyConfig{
			RemoveOverlappingPoints:    o.RemoveOverlappingPoints,
			RoundToIntegers:            o.RoundToIntegers,
			MinimumContourSegments:     o.MinimumContourSegments,
			MinimumContourArea:         o.MinimumContourArea,
			MinimumCurveLength:         o.MinimumCurveLength,
			DouglasPeuckerTolerance:    o.DouglasPeuckerTolerance,
			VisvalingamWhyattTolerance: o.VisvalingamWhyattTolerance,
			ShallowCurveTolerance:      o.ShallowCurveTolerance,
			SpikeTolerance:             o.SpikeTolerance,
			Concurrency:                o.Concurrency,
		},
	}
}

func (c *config) validate() error {
	if c.Trace.Scale <= 0 {
		return fmt.Errorf("trace.scale must be positive, got %g", c.Trace.Scale)
	}
	if c.Trace.Blur < 0 {
		return fmt.Errorf("trace.blur must not be negative, got %g", c.Trace.Blur)
	}
	if c.Simplify.Concurrency < 0 {
		return fmt.Errorf("simplify.concurrency must not be negative, got %d", c.Simplify.Concurrency)
	}
	return nil
}

func (c *config) params() trace.Params {
	t := c.Trace
	return trace.Params{
		Threshold: t.Threshold,
		Invert:    t.Invert,
		Blur:      t.Blur,
		TurdSize:  t.TurdSize,
		Tolerance: t.Tolerance,
		AlphaMax:  t.AlphaMax,
		Transform: curve.Scale(t.Scale, t.Scale).ThenTranslate(curve.Vec(t.OffsetX, t.OffsetY)),
	}
}

func (c *config) options() tracer.Options {
	s := c.Simplify
	return tracer.Options{
		RemoveOverlappingPoints:    s.RemoveOverlappingPoints,
		RoundToIntegers:            s.RoundToIntegers,
		MinimumContourSegments:     s.MinimumContourSegments,
		MinimumContourArea:         s.MinimumContourArea,
		MinimumCurveLength:         s.MinimumCurveLength,
		DouglasPeuckerTolerance:    s.DouglasPeuckerTolerance,
		VisvalingamWhyattTolerance: s.VisvalingamWhyattTolerance,
		ShallowCurveTolerance:      s.ShallowCurveTolerance,
		SpikeTolerance:             s.SpikeTolerance,
		Concurrency:                s.Concurrency,
	}
}

// readConfigFile reads settings from filename. An empty filename or an empty
// file yields the defaults.
func readConfigFile(filename string) (*config, error) {
	c := defaultConfig()
	if filename == "" {
		return c, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Package convert turns extracted markup statements into scene components.
// Coordinates move into the importer's pixel space, option text runs
// through the attribute parsers, and one builder per statement kind
// assembles the output records.
package convert

import (
	"errors"
	"log/slog"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

// ErrNoDrawingBlock reports source text without a recognizable drawing
// environment. Callers emit the error-document shape instead of a scene.
var ErrNoDrawingBlock = errors.New("no drawing environment block found")

// Config controls a Converter.
type Config struct {
	// ScaleX converts source X units to output units.
	ScaleX float64
	// ScaleY converts source Y units to output units. The Y axis flips
	// during conversion, so the factor is applied to the negated value.
	ScaleY float64
	// ShapeScale converts minimum width/height declarations to output
	// units.
	ShapeScale float64
	// Logger receives conversion diagnostics. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns the scale factors calibrated against designer
// exports.
func DefaultConfig() Config {
	return Config{
		ScaleX:     PositionScaleX,
		ScaleY:     PositionScaleY,
		ShapeScale: SizeScale,
	}
}

// Converter runs the statement-to-component pipeline. It keeps no
// per-document state and may be reused across documents.
type Converter struct {
	cfg Config
	log *slog.Logger
}

// New returns a Converter. Zero scale factors fall back to the calibrated
// defaults, a nil logger to slog.Default.
func New(cfg Config) *Converter {
	if cfg.ScaleX == 0 {
		cfg.ScaleX = PositionScaleX
	}
	if cfg.ScaleY == 0 {
		cfg.ScaleY = PositionScaleY
	}
	if cfg.ShapeScale == 0 {
		cfg.ShapeScale = SizeScale
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Converter{cfg: cfg, log: log}
}

// Convert runs the whole pipeline over raw document text. It returns
// ErrNoDrawingBlock when no environment exists. Statement-level problems
// never fail the document: they degrade to logged diagnostics and skipped
// or partial records.
func (c *Converter) Convert(text string) (*scene.Document, error) {
	body, ok := tikz.ExtractDrawingBlock(text)
	if !ok {
		return nil, ErrNoDrawingBlock
	}
	if coords := tikz.ParseCoordinates(body); len(coords) > 0 {
		c.log.Debug("named coordinates present but not resolved", "count", len(coords))
	}
	doc := scene.NewDocument()
	for _, st := range tikz.ExtractStatements(body) {
		if comp, ok := c.build(st); ok {
			doc.Components = append(doc.Components, comp)
		}
	}
	return doc, nil
}

func (c *Converter) build(st tikz.Statement) (scene.Component, bool) {
	switch s := st.(type) {
	case *tikz.NodeStatement:
		switch s.Kind {
		case tikz.KindNode:
			return c.buildShapeNode(s)
		case tikz.KindTwoNode:
			return c.buildTwoNode(s)
		case tikz.KindThreeNode:
			return c.buildThreeNode(s)
		case tikz.KindDevice:
			return c.buildDevice(s)
		}
	case *tikz.PathStatement:
		switch s.Kind {
		case tikz.KindWire:
			return c.buildWire(s)
		case tikz.KindChain:
			return c.buildChain(s)
		}
	}
	c.log.Warn("statement kind not supported", "kind", st.StatementKind().String())
	return nil, false
}

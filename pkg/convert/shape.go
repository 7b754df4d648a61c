package convert

import (
	"math"
	"regexp"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

var (
	shapeRe     = regexp.MustCompile(`shape=([^,\]]+)`)
	minWidthRe  = regexp.MustCompile(`minimum width=([-+]?\d*\.?\d+)`)
	minHeightRe = regexp.MustCompile(`minimum height=([-+]?\d*\.?\d+)`)
)

// parseShape reads the declared shape and optional minimum size out of a
// node's option text. Rectangles map to "rect"; every other declared shape
// renders as an ellipse. The width clamps negatives to zero and doubles as
// the height when no minimum height is declared; a height alone declares no
// size. ok is false without a shape declaration.
func (c *Converter) parseShape(options string, position scene.Point) (*scene.ShapeComponent, bool) {
	m := shapeRe.FindStringSubmatch(options)
	if m == nil {
		return nil, false
	}
	shape := "ellipse"
	if strings.TrimSpace(m[1]) == "rectangle" {
		shape = "rect"
	}
	comp := &scene.ShapeComponent{Type: shape, Position: position}
	if wm := minWidthRe.FindStringSubmatch(options); wm != nil {
		width := math.Max(0, c.sizeValue(c.parseFloat(wm[1])))
		size := scene.Point{X: width, Y: width}
		if hm := minHeightRe.FindStringSubmatch(options); hm != nil {
			size.Y = c.sizeValue(c.parseFloat(hm[1]))
		}
		comp.Size = &size
	}
	return comp, true
}

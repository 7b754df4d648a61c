package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

// Scale factors calibrated against CircuiTikZ Designer exports. Positions
// and declared sizes use different factors.
const (
	PositionScaleX = 37.795286
	PositionScaleY = 37.795286
	SizeScale      = 38.88379
)

// Round3 rounds to three decimals, halves away from zero, and normalizes
// negative zero. Every output value is rounded exactly once, after all
// arithmetic.
func Round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

func (c *Converter) transformX(x float64) float64 { return Round3(x * c.cfg.ScaleX) }
func (c *Converter) transformY(y float64) float64 { return Round3(-y * c.cfg.ScaleY) }
func (c *Converter) sizeValue(v float64) float64  { return Round3(v * c.cfg.ShapeScale) }

// absoluteCoordRe admits plain numeric pairs only. Relative coordinates
// such as ([yshift=0.2cm]X1.north) are dropped, not resolved.
var absoluteCoordRe = regexp.MustCompile(`^\(\s*-?\d*\.?\d+\s*,\s*-?\d*\.?\d+\s*\)`)

// transformCoord converts one parenthesized coordinate token into output
// space. ok is false for relative or malformed coordinates.
func (c *Converter) transformCoord(token string) (scene.Point, bool) {
	if !absoluteCoordRe.MatchString(token) {
		return scene.Point{}, false
	}
	inner := strings.Trim(token, "()")
	xs, ys, _ := strings.Cut(inner, ",")
	return scene.Point{
		X: c.transformX(c.parseFloat(xs)),
		Y: c.transformY(c.parseFloat(ys)),
	}, true
}

// parseFloat reads a numeric value, substituting zero for malformed text.
// The substitution can shift geometry, so it is logged rather than silent.
func (c *Converter) parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.log.Warn("numeric value fell back to zero", "text", s)
		return 0
	}
	return v
}

// collectPoints transforms every absolute coordinate token, preserving
// order and dropping the rest.
func (c *Converter) collectPoints(tokens []tikz.PathToken) []scene.Point {
	points := []scene.Point{}
	for _, t := range tokens {
		if t.Type != tikz.CoordToken {
			continue
		}
		if p, ok := c.transformCoord(t.Text); ok {
			points = append(points, p)
		}
	}
	return points
}

// clausePoints transforms the absolute clause coordinates of a node
// statement, in clause order.
func (c *Converter) clausePoints(clauses []tikz.Clause) []scene.Point {
	points := []scene.Point{}
	for _, cl := range clauses {
		if p, ok := c.transformCoord(cl.Coord); ok {
			points = append(points, p)
		}
	}
	return points
}

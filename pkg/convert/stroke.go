package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

// lineAliases maps dash patterns, normalized to a 1pt line width, to the
// importer's style names.
var lineAliases = map[string]string{
	"on 1pt off 4pt": "dotted",
	"on 1pt off 2pt": "denselydotted",
	"on 1pt off 8pt": "looselydotted",
	"on 4pt off 4pt": "dashed",
	"on 4pt off 2pt": "denselydashed",
	"on 4pt off 8pt": "looselydashed",
	"on 4pt off 2pt on 1pt off 2pt": "dashdot",
	"on 4pt off 1pt on 1pt off 1pt": "denselydashdot",
	"on 4pt off 4pt on 1pt off 4pt": "looselydashdot",
	"on 4pt off 2pt on 1pt off 2pt on 1pt off 2pt": "dashdotdot",
	"on 4pt off 1pt on 1pt off 1pt on 1pt off 1pt": "denselydashdotdot",
	"on 4pt off 4pt on 1pt off 4pt on 1pt off 4pt": "looselydashdotdot",
}

// arrowAliases maps arrow-tip spellings to the importer's names. Reversed
// tips carry an R suffix; a bare | renders as a line cap.
var arrowAliases = map[string]string{
	"stealth":          "stealth",
	"stealth reversed": "stealthR",
	"latex":            "latex",
	"latex reversed":   "latexR",
	"to":               "to",
	"to reversed":      "toR",
	"|":                "line",
}

var (
	lineWidthRe   = regexp.MustCompile(`line width=([\d.]+pt)`)
	drawOpacityRe = regexp.MustCompile(`draw opacity=([^,\]]+)`)
	dashPatternRe = regexp.MustCompile(`dash pattern=\{([^}]*)\}`)
	drawColorRe   = regexp.MustCompile(`draw=\{([^}]*)\}`)
	rgbTripleRe   = regexp.MustCompile(`rgb,255:red,(\d+);green,(\d+);blue,(\d+)`)
	dashLengthRe  = regexp.MustCompile(`(\d+\.?\d*)(pt)`)
)

// parseStroke extracts stroke attributes, gated on a draw marker anywhere
// in the option text. ok is false when the marker is absent; callers that
// need the no-border sentinel substitute scene.NoBorder on !ok. Only rgb
// triples are understood as colors; an unmatched dash pattern logs and
// renders solid.
func (c *Converter) parseStroke(options string) (scene.Stroke, bool) {
	if !strings.Contains(options, "draw") {
		return scene.Stroke{}, false
	}
	var stroke scene.Stroke
	widthForStyle := 1.0
	if m := lineWidthRe.FindStringSubmatch(options); m != nil {
		stroke.Width = m[1]
		widthForStyle = c.parseFloat(strings.TrimSuffix(m[1], "pt"))
	}
	if m := drawOpacityRe.FindStringSubmatch(options); m != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64); err == nil {
			stroke.Opacity = &v
		} else {
			c.log.Warn("draw opacity is not numeric, dropped", "text", m[1])
		}
	}
	if m := dashPatternRe.FindStringSubmatch(options); m != nil {
		key := descaleDashPattern(m[1], widthForStyle)
		if style, ok := lineAliases[key]; ok {
			stroke.Style = style
		} else {
			c.log.Warn("dash pattern not recognized, defaulting to solid", "pattern", key)
		}
	}
	if m := drawColorRe.FindStringSubmatch(options); m != nil {
		if color, ok := rgbColor(m[1]); ok {
			stroke.Color = color
		}
	}
	return stroke, true
}

// strokeOrSentinel wraps parseStroke with the shape fall-through: no draw
// marker yields the no-border sentinel, never an absent stroke.
func (c *Converter) strokeOrSentinel(options string) scene.Stroke {
	if stroke, ok := c.parseStroke(options); ok {
		return stroke
	}
	return scene.NoBorder()
}

// descaleDashPattern divides every pt length in the pattern by the line
// width, so the result keys lineAliases regardless of stroke weight. A zero
// width leaves the pattern unscaled; the lookup then fails loudly instead
// of dividing by zero.
func descaleDashPattern(pattern string, width float64) string {
	if width == 0 {
		return pattern
	}
	return dashLengthRe.ReplaceAllStringFunc(pattern, func(m string) string {
		sub := dashLengthRe.FindStringSubmatch(m)
		n, err := strconv.ParseFloat(sub[1], 64)
		if err != nil {
			return m
		}
		return fmt.Sprintf("%dpt", int(math.Round(n/width)))
	})
}

// rgbColor renders an rgb,255 triple as the importer's rgb(r,g,b) form.
func rgbColor(s string) (string, bool) {
	m := rgbTripleRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("rgb(%s,%s,%s)", m[1], m[2], m[3]), true
}

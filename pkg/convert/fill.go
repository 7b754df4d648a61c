package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

var (
	fillOpacityRe = regexp.MustCompile(`fill opacity=([^,\]]+)`)
	fillColorRe   = regexp.MustCompile(`fill=\{([^}]*)\}`)
)

// parseFill extracts fill attributes, gated on a fill marker anywhere in
// the option text. Named colors are not understood; only rgb triples
// survive. ok is false without the marker, and the component then carries
// no fill at all.
func (c *Converter) parseFill(options string) (scene.Fill, bool) {
	if !strings.Contains(options, "fill") {
		return scene.Fill{}, false
	}
	var fill scene.Fill
	if m := fillOpacityRe.FindStringSubmatch(options); m != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64); err == nil {
			fill.Opacity = &v
		} else {
			c.log.Warn("fill opacity is not numeric, dropped", "text", m[1])
		}
	}
	if m := fillColorRe.FindStringSubmatch(options); m != nil {
		if color, ok := rgbColor(m[1]); ok {
			fill.Color = color
		}
	}
	return fill, true
}

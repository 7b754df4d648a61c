package convert

import (
	"regexp"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

var (
	textColorRe = regexp.MustCompile(`\\textcolor\{([^}]+)\}(.*)`)
	fontCmdRe   = regexp.MustCompile(`^\\([a-zA-Z]+)\s*(.*)`)
	anchorRe    = regexp.MustCompile(`anchor=([^\s,\]]+)`)
)

// labelSpans splits mixed text into plain and math spans, then rewrites a
// span holding a bare \\ line break into a newline.
func labelSpans(s string) []string {
	spans := tikz.SplitMathSpans(s)
	for i, span := range spans {
		if strings.TrimSpace(span) == `\\` {
			spans[i] = "\n"
		}
	}
	return spans
}

// parseText builds a shape's text box from its clause label: an optional
// \textcolor wrapper, an optional leading font command, and the spans
// rejoined on single spaces. Math spans pass through verbatim. ok is false
// for empty text, and the shape then carries no text box.
func (c *Converter) parseText(token string) (*scene.Text, bool) {
	text := scene.DefaultText()
	if m := textColorRe.FindStringSubmatch(token); m != nil {
		if color, ok := rgbColor(m[1]); ok {
			text.Color = color
		}
		token = m[2]
		if len(token) >= 2 && strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
			token = token[1 : len(token)-1]
		}
	}
	spans := labelSpans(token)
	if len(spans) == 0 {
		return nil, false
	}
	if strings.HasPrefix(spans[0], `\`) {
		if m := fontCmdRe.FindStringSubmatch(spans[0]); m != nil {
			text.FontSize = m[1]
			spans[0] = m[2]
		}
	}
	text.Text = strings.Join(spans, " ")
	return &text, true
}

package convert

import (
	"regexp"
	"strings"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

var (
	deviceValueRe = regexp.MustCompile(`(?s)\$(.*)\$`)
	nameOptionRe  = regexp.MustCompile(`^name=(.+)`)
)

// firstPosition returns the leading clause and the statement's first
// absolute coordinate, scanning every clause in order. Statements without
// either are skipped; nothing sensible can be positioned.
func (c *Converter) firstPosition(s *tikz.NodeStatement) (tikz.Clause, scene.Point, bool) {
	if len(s.Clauses) == 0 {
		c.log.Warn("node statement did not match its clause grammar, skipping",
			"kind", s.Kind.String())
		return tikz.Clause{}, scene.Point{}, false
	}
	points := c.clausePoints(s.Clauses)
	if len(points) == 0 {
		c.log.Warn("node statement has no absolute coordinate, skipping",
			"kind", s.Kind.String())
		return tikz.Clause{}, scene.Point{}, false
	}
	return s.Clauses[0], points[0], true
}

// buildShapeNode converts a single-clause shape declaration. The clause's
// label slot stays unused for this form.
func (c *Converter) buildShapeNode(s *tikz.NodeStatement) (scene.Component, bool) {
	cl, pos, ok := c.firstPosition(s)
	if !ok {
		return nil, false
	}
	comp, ok := c.parseShape(cl.Options, pos)
	if !ok {
		c.log.Warn("shape statement without shape declaration, skipping", "options", cl.Options)
		return nil, false
	}
	if cl.HasName && cl.Name != "" {
		comp.Name = cl.Name
	}
	stroke := c.strokeOrSentinel(cl.Options)
	comp.Stroke = &stroke
	comp.Rotation, comp.Scale = parseRotation(cl.Options)
	return comp, true
}

// buildTwoNode converts a shape clause chained with a text clause.
func (c *Converter) buildTwoNode(s *tikz.NodeStatement) (scene.Component, bool) {
	cl, pos, ok := c.firstPosition(s)
	if !ok {
		return nil, false
	}
	comp, ok := c.parseShape(cl.Options, pos)
	if !ok {
		c.log.Warn("shape statement without shape declaration, skipping", "options", cl.Options)
		return nil, false
	}
	if len(s.Clauses) > 1 {
		if text, ok := c.parseText(s.Clauses[1].Label); ok {
			comp.Text = text
		} else {
			c.log.Debug("text clause without content", "options", s.Clauses[1].Options)
		}
	}
	if cl.HasName && cl.Name != "" {
		comp.Name = cl.Name
	}
	stroke := c.strokeOrSentinel(cl.Options)
	comp.Stroke = &stroke
	if fill, ok := c.parseFill(cl.Options); ok {
		comp.Fill = &fill
	}
	comp.Rotation, comp.Scale = parseRotation(cl.Options)
	return comp, true
}

// buildThreeNode converts the three-clause form: shape, anchored label,
// text.
func (c *Converter) buildThreeNode(s *tikz.NodeStatement) (scene.Component, bool) {
	cl, pos, ok := c.firstPosition(s)
	if !ok {
		return nil, false
	}
	comp, ok := c.parseShape(cl.Options, pos)
	if !ok {
		c.log.Warn("shape statement without shape declaration, skipping", "options", cl.Options)
		return nil, false
	}
	if len(s.Clauses) > 2 {
		if text, ok := c.parseText(s.Clauses[2].Label); ok {
			comp.Text = text
		} else {
			c.log.Debug("text clause without content", "options", s.Clauses[2].Options)
		}
	}
	if cl.HasName && cl.Name != "" {
		comp.Name = cl.Name
	}
	stroke := c.strokeOrSentinel(cl.Options)
	comp.Stroke = &stroke
	if fill, ok := c.parseFill(cl.Options); ok {
		comp.Fill = &fill
	}
	if len(s.Clauses) > 1 {
		c.attachShapeLabel(comp, s)
	}
	comp.Rotation, comp.Scale = parseRotation(cl.Options)
	return comp, true
}

// attachShapeLabel builds the shape label from the anchor clause. A leading
// font command moves to the text record under the importer's lowercase
// fontsize key, and its span, remainder included, is excluded from the
// value. With a third clause present the label pins to the importer's
// default northeast placement.
func (c *Converter) attachShapeLabel(comp *scene.ShapeComponent, s *tikz.NodeStatement) {
	anchor := s.Clauses[1]
	spans := labelSpans(anchor.Label)
	if len(spans) == 0 {
		c.log.Debug("anchor clause without label text", "options", anchor.Options)
		return
	}
	value := strings.Join(spans, " ")
	if strings.HasPrefix(spans[0], `\`) {
		if m := fontCmdRe.FindStringSubmatch(spans[0]); m != nil {
			if comp.Text != nil {
				comp.Text.LabelFontSize = m[1]
			}
			value = strings.Join(spans[1:], " ")
		}
	}
	label := &scene.Label{Value: strings.Trim(value, "$")}
	if m := anchorRe.FindStringSubmatch(anchor.Options); m != nil {
		label.Anchor = m[1]
	}
	if len(s.Clauses) > 2 {
		label.Position = "northeast"
		label.RelativeToComponent = "true"
		label.Distance = "0.16cm"
	}
	comp.Label = label
}

// buildDevice converts a device placement. The first comma segment of the
// options is the device id, the rest are modifiers; rotation and scale are
// read only when modifiers exist. A second clause carries the annotation.
func (c *Converter) buildDevice(s *tikz.NodeStatement) (scene.Component, bool) {
	cl, pos, ok := c.firstPosition(s)
	if !ok {
		return nil, false
	}
	comp := &scene.DeviceComponent{Type: "node", Position: pos, Options: []string{}}
	parts := strings.Split(cl.Options, ",")
	if len(parts) == 1 {
		comp.ID = cl.Options
	} else {
		comp.ID = parts[0]
		for _, p := range parts[1:] {
			comp.Options = append(comp.Options, strings.TrimSpace(p))
		}
		comp.Rotation, comp.Scale = parseRotation(cl.Options)
	}
	if len(s.Clauses) > 1 {
		label := &scene.DeviceLabel{Anchor: "default", Position: "default", Distance: "0.12cm"}
		if m := deviceValueRe.FindStringSubmatch(s.Clauses[1].Label); m != nil {
			label.Value = &m[1]
		}
		comp.Label = label
	}
	return comp, true
}

// buildWire assembles a polyline from the coordinate tokens in order, with
// the turn operators as directions. The trailing token may carry options:
// an explicit line width gates the stroke, and a draw marker upgrades it to
// the full stroke parse.
func (c *Converter) buildWire(s *tikz.PathStatement) (scene.Component, bool) {
	comp := &scene.WireComponent{
		Type:       "wire",
		Points:     c.collectPoints(s.Tokens),
		Directions: []string{},
	}
	for _, t := range s.Tokens {
		if t.Type == tikz.TurnToken {
			comp.Directions = append(comp.Directions, t.Text)
		}
	}
	if len(comp.Points) == 0 {
		c.log.Warn("wire statement has no absolute coordinates", "tokens", len(s.Tokens))
	}
	if len(s.Tokens) > 0 {
		c.attachWireStroke(comp, s.Tokens[len(s.Tokens)-1].Text)
	}
	return comp, true
}

// attachWireStroke reads the wire's trailing token. With a line width the
// stroke is at least the width, upgraded by the full parse when a draw
// marker is present, and arrows use the comma spelling beside the width.
// Without a width only the bare bracket arrow spelling applies and no
// stroke is emitted.
func (c *Converter) attachWireStroke(comp *scene.WireComponent, options string) {
	if m := lineWidthRe.FindStringSubmatch(options); m != nil {
		stroke := scene.Stroke{Width: m[1]}
		if full, ok := c.parseStroke(options); ok {
			stroke = full
		}
		comp.Stroke = &stroke
		comp.StartArrow, comp.EndArrow = c.parseArrows(options, widthArrowRe)
		return
	}
	comp.StartArrow, comp.EndArrow = c.parseArrows(options, bareArrowRe)
}

var (
	widthArrowRe = regexp.MustCompile(`,\s*([a-zA-Z]+)-([^\],]*)`)
	bareArrowRe  = regexp.MustCompile(`\[([^-]*)-(.*)\]`)
)

// parseArrows maps both captures of an arrow spelling through the alias
// table. Unknown tips log and drop the attribute rather than passing
// through unmapped.
func (c *Converter) parseArrows(options string, re *regexp.Regexp) (start, end string) {
	m := re.FindStringSubmatch(options)
	if m == nil {
		return "", ""
	}
	if m[1] != "" {
		if alias, ok := arrowAliases[m[1]]; ok {
			start = alias
		} else {
			c.log.Warn("start arrow tip not supported", "tip", m[1])
		}
	}
	if m[2] != "" {
		if alias, ok := arrowAliases[m[2]]; ok {
			end = alias
		} else {
			c.log.Warn("end arrow tip not supported", "tip", m[2])
		}
	}
	return start, end
}

// buildChain converts a to-chain routing a two-terminal element. The
// element options sit in the second token; a dollar sign anywhere in them
// marks a label, otherwise a comma marks plain options, otherwise the token
// is the bare element id.
func (c *Converter) buildChain(s *tikz.PathStatement) (scene.Component, bool) {
	points := c.collectPoints(s.Tokens)
	if len(points) < 2 {
		c.log.Warn("chain needs two absolute coordinates, skipping", "points", len(points))
		return nil, false
	}
	if len(s.Tokens) < 2 {
		c.log.Warn("chain statement too short, skipping", "tokens", len(s.Tokens))
		return nil, false
	}
	comp := &scene.PathComponent{Type: "path", Points: points}
	options := s.Tokens[1].Text

	switch {
	case strings.Contains(options, "$"):
		parts := tikz.SplitOptions(options)
		last := parts[len(parts)-1]
		otherSide, value, hasValue := tikz.ExtractLabel(last)
		label := &scene.ChainLabel{Distance: "0.12cm"}
		if hasValue {
			label.Value = &value
		}
		if otherSide {
			label.OtherSide = "true"
		}
		comp.Label = label
		comp.Scale = mirrorInvertScale(parts)
		comp.ID = parts[0]
		if m := nameOptionRe.FindStringSubmatch(last); m != nil {
			comp.Name = m[1]
		}
	case strings.Contains(options, ","):
		parts := strings.Split(strings.Trim(options, "[]"), ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		comp.Scale = mirrorInvertScale(parts)
		comp.ID = parts[0]
	default:
		comp.ID = strings.Trim(options, "[]")
	}
	return comp, true
}

// mirrorInvertScale maps the mirror and invert flags to an explicit
// two-axis scale, or nil when neither is present.
func mirrorInvertScale(parts []string) *scene.Scale {
	mirror := containsOption(parts, "mirror")
	invert := containsOption(parts, "invert")
	switch {
	case mirror && invert:
		return &scene.Scale{X: -1, Y: -1}
	case mirror:
		return &scene.Scale{X: -1, Y: 1}
	case invert:
		return &scene.Scale{X: 1, Y: -1}
	}
	return nil
}

func containsOption(parts []string, want string) bool {
	for _, p := range parts {
		if p == want {
			return true
		}
	}
	return false
}

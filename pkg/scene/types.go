// Package scene defines the structured scene document produced by the
// converter: a versioned component list plus the typed records and shared
// attribute shapes the CircuiTikZ Designer import format expects.
package scene

// Version is the scene format version tag.
const Version = "0.1"

// NoBlockMessage is the error payload written when a document contains no
// recognizable drawing environment.
const NoBlockMessage = `No valid \begin{circuitikz} block found.`

// Point is a 2D coordinate in output units. The same shape carries
// positions, polyline points, and width/height sizes.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scale is a per-axis scale factor pair.
type Scale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke describes an element outline. All fields are optional; a stroke of
// exactly {"opacity": 0} is the no-border sentinel (see NoBorder).
type Stroke struct {
	Width   string   `json:"width,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Style   string   `json:"style,omitempty"`
	Color   string   `json:"color,omitempty"`
}

// NoBorder returns the stroke attached to shapes that carry no draw
// options. Importers match the literal {"opacity": 0} record to suppress
// the border, so the zero must be emitted, not omitted.
func NoBorder() Stroke {
	zero := 0.0
	return Stroke{Opacity: &zero}
}

// Fill describes an element's interior color.
type Fill struct {
	Opacity *float64 `json:"opacity,omitempty"`
	Color   string   `json:"color,omitempty"`
}

// Text is the text box attached to a shape.
type Text struct {
	Align               string `json:"align"`
	Justify             string `json:"justify"`
	InnerSep            string `json:"innerSep"`
	ShowPlaceholderText string `json:"showPlaceholderText"`
	Color               string `json:"color,omitempty"`
	FontSize            string `json:"fontSize,omitempty"`
	Text                string `json:"text"`
	// LabelFontSize mirrors the importer's lowercase "fontsize" key, set
	// when a shape label opens with a formatting command. It coexists with
	// FontSize, which belongs to the text body itself.
	LabelFontSize string `json:"fontsize,omitempty"`
}

// DefaultText returns the fixed text-box settings the importer expects:
// centered both ways, no inner separation, placeholder text enabled.
func DefaultText() Text {
	return Text{
		Align:               "1",
		Justify:             "0",
		InnerSep:            "0",
		ShowPlaceholderText: "true",
	}
}

// Label annotates a shape, positioned relative to the component.
type Label struct {
	Value               string `json:"value"`
	Anchor              string `json:"anchor,omitempty"`
	Position            string `json:"position,omitempty"`
	RelativeToComponent string `json:"relativeToComponent,omitempty"`
	Distance            string `json:"distance,omitempty"`
}

// ChainLabel annotates a two-terminal element on a chain, e.g. l_={$L_1$}.
// OtherSide is set for the l_ spelling.
type ChainLabel struct {
	Value     *string `json:"value,omitempty"`
	OtherSide string  `json:"otherSide,omitempty"`
	Distance  string  `json:"distance"`
}

// DeviceLabel places a device annotation at the importer's default anchor.
type DeviceLabel struct {
	Anchor   string  `json:"anchor"`
	Position string  `json:"position"`
	Distance string  `json:"distance"`
	Value    *string `json:"value,omitempty"`
}

// Component is implemented by every record that can appear in a document's
// components list.
type Component interface {
	component()
}

// ShapeComponent is a rect or ellipse, optionally carrying a text box and a
// label.
type ShapeComponent struct {
	Type     string   `json:"type"`
	Position Point    `json:"position"`
	Size     *Point   `json:"size,omitempty"`
	Text     *Text    `json:"text,omitempty"`
	Name     string   `json:"name,omitempty"`
	Stroke   *Stroke  `json:"stroke,omitempty"`
	Fill     *Fill    `json:"fill,omitempty"`
	Label    *Label   `json:"label,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
	Scale    *Scale   `json:"scale,omitempty"`
}

// DeviceComponent is a circuit symbol placed by identifier (an npn, an op
// amp, a port). Type is always "node".
type DeviceComponent struct {
	Type     string       `json:"type"`
	Position Point        `json:"position"`
	Rotation *float64     `json:"rotation,omitempty"`
	Scale    *Scale       `json:"scale,omitempty"`
	Label    *DeviceLabel `json:"label,omitempty"`
	Options  []string     `json:"options"`
	ID       string       `json:"id"`
}

// WireComponent is a polyline of absolute points with per-segment turn
// directions. Points and Directions are always present, possibly empty.
type WireComponent struct {
	Type       string   `json:"type"`
	Points     []Point  `json:"points"`
	Directions []string `json:"directions"`
	Stroke     *Stroke  `json:"stroke,omitempty"`
	StartArrow string   `json:"startArrow,omitempty"`
	EndArrow   string   `json:"endArrow,omitempty"`
}

// PathComponent is a chain routing a two-terminal element between points.
type PathComponent struct {
	Type   string      `json:"type"`
	Points []Point     `json:"points"`
	Label  *ChainLabel `json:"label,omitempty"`
	Scale  *Scale      `json:"scale,omitempty"`
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
}

func (*ShapeComponent) component()  {}
func (*DeviceComponent) component() {}
func (*WireComponent) component()   {}
func (*PathComponent) component()   {}

// Document is a successful conversion result.
type Document struct {
	Version    string      `json:"version"`
	Components []Component `json:"components"`
}

// ErrorDocument replaces the whole document when no drawing block exists.
// It deliberately carries no components list.
type ErrorDocument struct {
	Error string `json:"error"`
}

// NewDocument returns an empty document. Components marshals as [] rather
// than null even when nothing converts.
func NewDocument() *Document {
	return &Document{Version: Version, Components: []Component{}}
}

// Package tikz recovers statements and token sequences from CircuiTikZ
// Designer markup. It takes raw document text through comment stripping,
// drawing-environment extraction, and statement scanning; the resulting
// statements carry named clauses and typed path tokens for a downstream
// builder to interpret. The package is pure text analysis: no coordinate
// arithmetic, no output records, no logging.
package tikz

// Kind classifies a statement's layout. Downstream interpretation is
// kind-specific, so the kind decides which builder runs.
type Kind int

const (
	// KindNode is a single-clause \node declaring an explicit shape.
	KindNode Kind = iota
	// KindTwoNode is a shape clause chained with one text clause.
	KindTwoNode
	// KindThreeNode is a shape clause chained with a label clause and a
	// text clause.
	KindThreeNode
	// KindDevice is a \node placing a component by identifier, with an
	// optional second clause for its annotation.
	KindDevice
	// KindWire is a \draw or \path polyline without a chain keyword.
	KindWire
	// KindChain is a \draw or \path carrying a to[...] element.
	KindChain
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindTwoNode:
		return "2node"
	case KindThreeNode:
		return "3node"
	case KindDevice:
		return "device"
	case KindWire:
		return "wire"
	case KindChain:
		return "to"
	}
	return "unknown"
}

// Statement is one recognized node, draw, or path command.
type Statement interface {
	StatementKind() Kind
}

// Clause is one "[options](name) at (coord) {label}" fragment of a node
// statement. Options, Name, and Label are stored without their delimiters;
// Coord keeps its parentheses. HasName distinguishes an absent name group
// from an empty one.
type Clause struct {
	Options string
	Name    string
	HasName bool
	Coord   string
	Label   string
}

// NodeStatement is a node declaration of up to three chained clauses. A
// statement whose clause grammar failed has an empty Clauses slice.
type NodeStatement struct {
	Kind    Kind
	Clauses []Clause
}

func (s *NodeStatement) StatementKind() Kind { return s.Kind }

// PathTokenType discriminates the recognized fragments of a draw or path
// body.
type PathTokenType int

const (
	// CoordToken is a parenthesized coordinate, absolute or relative.
	CoordToken PathTokenType = iota
	// OptionsToken is a bracket group, optionally prefixed with to or node.
	OptionsToken
	// TurnToken is one of the segment operators --, -| and |-.
	TurnToken
)

func (t PathTokenType) String() string {
	switch t {
	case CoordToken:
		return "coord"
	case OptionsToken:
		return "options"
	case TurnToken:
		return "turn"
	}
	return "unknown"
}

// PathToken is one recognized fragment of a draw/path body, in encounter
// order. Text keeps the fragment verbatim, delimiters included.
type PathToken struct {
	Type PathTokenType
	Text string
}

// PathStatement is a draw or path command tokenized into coordinates,
// option groups, and turn operators. For KindChain the element options sit
// in the second token by layout convention, with the chain keyword already
// stripped when that token is a to[...] group.
type PathStatement struct {
	Kind   Kind
	Tokens []PathToken
}

func (s *PathStatement) StatementKind() Kind { return s.Kind }

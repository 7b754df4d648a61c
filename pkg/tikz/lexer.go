package tikz

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// pathLexer recognizes the fragments a draw or path body is built from:
// parenthesized coordinates, bracket groups optionally prefixed with to or
// node (brackets may nest two levels, enough for label={[...]...} styles),
// and the three segment operators. Rules are tried in order, so -- wins
// over the turn operators at the same position. Whitespace and anything
// else lex as Space and Junk, which the token loop drops; scanning never
// fails on unrecognized text.
var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Coord", Pattern: `\([^()]*\)`},
	{Name: "Options", Pattern: `(?:to|node)?\[(?:[^\[\]]|\[(?:[^\[\]]|\[[^\[\]]*\])*\])*\]`},
	{Name: "Line", Pattern: `--`},
	{Name: "TurnHV", Pattern: `-\|`},
	{Name: "TurnVH", Pattern: `\|-`},
	{Name: "Space", Pattern: `\s+`},
	{Name: "Junk", Pattern: `.`},
})

var pathSymbols = pathLexer.Symbols()

// TokenizePath lexes a statement body into path tokens in encounter order.
func TokenizePath(body string) ([]PathToken, error) {
	lex, err := pathLexer.LexString("", body)
	if err != nil {
		return nil, err
	}
	var tokens []PathToken
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, err
		}
		if tok.EOF() {
			return tokens, nil
		}
		switch tok.Type {
		case pathSymbols["Coord"]:
			tokens = append(tokens, PathToken{Type: CoordToken, Text: tok.Value})
		case pathSymbols["Options"]:
			tokens = append(tokens, PathToken{Type: OptionsToken, Text: tok.Value})
		case pathSymbols["Line"], pathSymbols["TurnHV"], pathSymbols["TurnVH"]:
			tokens = append(tokens, PathToken{Type: TurnToken, Text: tok.Value})
		}
	}
}

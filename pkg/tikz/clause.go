package tikz

import (
	"regexp"
	"strings"
)

// Node statements are scanned by hand: clause labels terminate at the brace
// that hands over to the next clause, which needs one token of lookahead
// past arbitrary intermediate text. Clause options never contain a closing
// bracket, and the name group binds only when its parenthesis directly
// follows the options.

// shapeDeclRe spots an explicit shape declaration, which separates shape
// statements from device placements.
var shapeDeclRe = regexp.MustCompile(`\\node\s*\[\s*shape\s*=`)

// clauseMode selects the label terminator.
type clauseMode int

const (
	// clauseChained ends the label at a brace followed by another clause.
	// Arbitrary text may sit between the name and the at keyword.
	clauseChained clauseMode = iota
	// clauseFinal ends the label at a brace followed by the statement
	// terminator, and requires at to directly follow the name.
	clauseFinal
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// parseClause reads one clause from s, which must start at the opening
// options bracket. It returns the clause, the remainder after the label's
// closing brace, and whether the clause grammar held.
func parseClause(s string, mode clauseMode) (Clause, string, bool) {
	var cl Clause
	if !strings.HasPrefix(s, "[") {
		return cl, "", false
	}
	end := strings.IndexByte(s, ']')
	if end <= 1 {
		return cl, "", false
	}
	cl.Options = strings.TrimSpace(s[1:end])
	rest := s[end+1:]

	if strings.HasPrefix(rest, "(") {
		if cp := strings.IndexByte(rest, ')'); cp >= 0 {
			cl.Name = strings.TrimSpace(rest[1:cp])
			cl.HasName = true
			rest = rest[cp+1:]
		}
	}

	switch mode {
	case clauseChained:
		at, ok := findAtCoord(rest)
		if !ok {
			return cl, "", false
		}
		rest = rest[at:]
	case clauseFinal:
		r := trimLeftSpace(rest)
		if !strings.HasPrefix(r, "at") {
			return cl, "", false
		}
		r = trimLeftSpace(r[2:])
		if !strings.HasPrefix(r, "(") {
			return cl, "", false
		}
		rest = r
	}

	cp := strings.IndexByte(rest, ')')
	if cp < 0 {
		return cl, "", false
	}
	cl.Coord = rest[:cp+1]
	rest = trimLeftSpace(rest[cp+1:])

	if !strings.HasPrefix(rest, "{") {
		return cl, "", false
	}
	rest = rest[1:]
	labelEnd := labelTerminator(rest, mode)
	if labelEnd < 0 {
		return cl, "", false
	}
	cl.Label = strings.TrimSpace(rest[:labelEnd])
	return cl, rest[labelEnd+1:], true
}

// findAtCoord locates the coordinate opened by the first viable at keyword:
// at, optional whitespace, then a parenthesis. The keyword must come before
// any statement boundary handing over to a new clause. Returns the index of
// the parenthesis.
func findAtCoord(s string) (int, bool) {
	limit := len(s)
	if b := clauseBoundary(s); b >= 0 {
		limit = b
	}
	for i := 0; i+1 < len(s) && i < limit; i++ {
		if s[i] != 'a' || s[i+1] != 't' {
			continue
		}
		j := i + 2
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '(' {
			return j, true
		}
	}
	return 0, false
}

// clauseBoundary returns the index of the first semicolon that, after
// optional whitespace, is followed by a fresh node clause. Scanning for a
// clause's own parts must not cross it.
func clauseBoundary(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ';' {
			continue
		}
		j := i + 1
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if strings.HasPrefix(s[j:], "node[") {
			return i
		}
	}
	return -1
}

// labelTerminator finds the closing brace of a label: the first brace
// followed (after optional whitespace) by the next clause in chained mode,
// or by the statement's semicolon in final mode. Intermediate braces are
// label text.
func labelTerminator(s string, mode clauseMode) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '}' {
			continue
		}
		j := i + 1
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		switch mode {
		case clauseChained:
			if strings.HasPrefix(s[j:], "node[") {
				return i
			}
		case clauseFinal:
			if j < len(s) && s[j] == ';' {
				return i
			}
		}
	}
	return -1
}

// findClause scans s for intro (a clause opener ending in the options
// bracket) and parses a clause at each occurrence until one satisfies the
// grammar. Returns the clause and the remainder after its label.
func findClause(s, intro string, mode clauseMode) (Clause, string, bool) {
	pos := 0
	for {
		i := strings.Index(s[pos:], intro)
		if i < 0 {
			return Clause{}, "", false
		}
		i += pos
		if cl, rest, ok := parseClause(s[i+len(intro)-1:], mode); ok {
			return cl, rest, true
		}
		pos = i + 1
	}
}

// parseSingleNodeLine reads a one-clause node statement. Lines whose clause
// grammar fails produce no statement at all.
func parseSingleNodeLine(line string) (*NodeStatement, bool) {
	kind := KindDevice
	if shapeDeclRe.MatchString(line) {
		kind = KindNode
	}
	cl, _, ok := findClause(line, `\node[`, clauseFinal)
	if !ok {
		return nil, false
	}
	return &NodeStatement{Kind: kind, Clauses: []Clause{cl}}, true
}

// parseTwoNodeLine reads a two-clause statement: a shape or device clause
// followed by one chained clause. Grammar failures leave the statement with
// however many clauses parsed.
func parseTwoNodeLine(line string) *NodeStatement {
	kind := KindDevice
	if shapeDeclRe.MatchString(line) {
		kind = KindTwoNode
	}
	st := &NodeStatement{Kind: kind}
	first, rest, ok := findClause(line, `\node[`, clauseChained)
	if !ok {
		return st
	}
	st.Clauses = append(st.Clauses, first)
	if last, _, ok := findClause(rest, `node[`, clauseFinal); ok {
		st.Clauses = append(st.Clauses, last)
	}
	return st
}

// parseThreeNodeLine reads the three-clause form: shape, anchor label,
// text.
func parseThreeNodeLine(line string) *NodeStatement {
	st := &NodeStatement{Kind: KindThreeNode}
	first, rest, ok := findClause(line, `\node[`, clauseChained)
	if !ok {
		return st
	}
	st.Clauses = append(st.Clauses, first)
	mid, rest, ok := findClause(rest, `node[`, clauseChained)
	if !ok {
		return st
	}
	st.Clauses = append(st.Clauses, mid)
	if last, _, ok := findClause(rest, `node[`, clauseFinal); ok {
		st.Clauses = append(st.Clauses, last)
	}
	return st
}

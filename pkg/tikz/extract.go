package tikz

import "strings"

// rawCommand is one \draw or \path span before tokenization. options keeps
// the leading bracket group verbatim, brackets included, or is empty.
type rawCommand struct {
	options string
	content string
}

// commandSpans finds every "\draw ... ;" (or \path) span in the body. A
// bracket group directly after the command name is its options, but only
// when a semicolon terminates the span after the group closes; otherwise
// the bracket text counts as content. Spans with no terminator at all are
// skipped.
func commandSpans(body, command string) []rawCommand {
	var spans []rawCommand
	pos := 0
	for {
		i := strings.Index(body[pos:], command)
		if i < 0 {
			return spans
		}
		i += pos
		rest := body[i+len(command):]
		options, content, n, ok := splitCommand(rest)
		if !ok {
			pos = i + len(command)
			continue
		}
		spans = append(spans, rawCommand{options: options, content: content})
		pos = i + len(command) + n
	}
}

func splitCommand(rest string) (options, content string, n int, ok bool) {
	if strings.HasPrefix(rest, "[") {
		if cb := strings.IndexByte(rest, ']'); cb >= 0 {
			if semi := strings.Index(rest[cb:], ";"); semi >= 0 {
				semi += cb
				return rest[:cb+1], rest[cb+1 : semi], semi + 1, true
			}
		}
	}
	semi := strings.IndexByte(rest, ';')
	if semi < 0 {
		return "", "", 0, false
	}
	return "", rest[:semi], semi + 1, true
}

// hasArrowOptions reports an arrow tip in a command's options.
// Arrow-bearing commands draw annotations rather than wires and are not
// converted. The <-> form contains both markers so two checks suffice.
func hasArrowOptions(options string) bool {
	return strings.Contains(options, "<-") || strings.Contains(options, "->")
}

// ExtractStatements scans a comment-stripped drawing body and returns its
// recognized statements: node statements line by line first, then draw
// spans, then path spans, each group in source order.
//
// A line's clause count picks its grammar: one node clause is a shape or
// device, two chain a text clause on, three insert a label clause between.
// Lines with more clauses, or none, produce nothing.
func ExtractStatements(body string) []Statement {
	var statements []Statement

	for _, line := range strings.Split(body, "\n") {
		switch strings.Count(line, "node[") {
		case 1:
			if st, ok := parseSingleNodeLine(line); ok {
				statements = append(statements, st)
			}
		case 2:
			statements = append(statements, parseTwoNodeLine(line))
		case 3:
			statements = append(statements, parseThreeNodeLine(line))
		}
	}

	statements = append(statements, pathStatements(body, `\draw`)...)
	statements = append(statements, pathStatements(body, `\path`)...)
	return statements
}

func pathStatements(body, command string) []Statement {
	var statements []Statement
	for _, span := range commandSpans(body, command) {
		if hasArrowOptions(span.options) {
			continue
		}
		text := strings.TrimSpace(span.content)
		if span.options != "" {
			// Leading options describe the whole polyline and are appended
			// so they land in the trailing token slot.
			text += strings.TrimSpace(span.options)
		}
		tokens, err := TokenizePath(text)
		if err != nil {
			tokens = nil
		}
		statements = append(statements, classifyPath(tokens))
	}
	return statements
}

// classifyPath decides wire against chain: any token opening with the chain
// keyword marks a chain, and the second token sheds its to prefix when it
// is a to[...] group.
func classifyPath(tokens []PathToken) *PathStatement {
	chain := false
	for _, t := range tokens {
		if strings.HasPrefix(t.Text, "to") {
			chain = true
			break
		}
	}
	if !chain {
		return &PathStatement{Kind: KindWire, Tokens: tokens}
	}
	if len(tokens) > 1 {
		second := tokens[1].Text
		if strings.HasPrefix(second, "to[") && strings.HasSuffix(second, "]") {
			tokens[1].Text = second[2:]
		}
	}
	return &PathStatement{Kind: KindChain, Tokens: tokens}
}

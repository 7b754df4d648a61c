package tikz

import "strings"

// SplitMathSpans splits s into alternating plain and math spans. A $...$
// span is indivisible. A backslash escapes the following character in
// either state, so \$ neither opens nor closes math mode. A $ that never
// closes is plain text. Empty spans are dropped; concatenating the result
// reproduces s.
func SplitMathSpans(s string) []string {
	var spans []string
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, plain.String())
			plain.Reset()
		}
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			plain.WriteByte(c)
			plain.WriteByte(s[i+1])
			i += 2
			continue
		}
		if c == '$' {
			if end := closeMath(s, i+1); end >= 0 {
				flush()
				spans = append(spans, s[i:end+1])
				i = end + 1
				continue
			}
		}
		plain.WriteByte(c)
		i++
	}
	flush()
	return spans
}

// closeMath returns the index of the $ closing a span opened just before
// from, or -1 when the span never closes. Escaped dollars do not close.
func closeMath(s string, from int) int {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '$':
			return i
		}
	}
	return -1
}

// SplitOptions strips one outer bracket pair and splits on commas that sit
// at brace depth zero outside math mode. Parts are space-trimmed. A
// backslash escapes the next character, so an escaped comma or brace is
// ordinary text.
func SplitOptions(s string) []string {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	var parts []string
	var current strings.Builder
	depth := 0
	inMath := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			current.WriteByte(c)
			current.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '$' {
			inMath = !inMath
			current.WriteByte(c)
			continue
		}
		if !inMath {
			switch c {
			case '{':
				depth++
			case '}':
				depth--
			case ',':
				if depth == 0 {
					parts = append(parts, strings.TrimSpace(current.String()))
					current.Reset()
					continue
				}
			}
		}
		current.WriteByte(c)
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}
	return parts
}

// ExtractLabel reads the label value out of an l={...} or l_={...} option
// part. The braced body is kept verbatim apart from trimming; one outer
// $ pair is also removed when the interior's dollar count stays balanced,
// so a value like $a\$b$ keeps its delimiters. otherSide reports the l_
// spelling whether or not a braced value follows; ok reports that a value
// was extracted.
func ExtractLabel(option string) (otherSide bool, value string, ok bool) {
	var body string
	switch {
	case strings.HasPrefix(option, "l_="):
		otherSide = true
		body = option[3:]
	case strings.HasPrefix(option, "l="):
		body = option[2:]
	default:
		return false, "", false
	}
	body = strings.TrimSpace(body)
	if len(body) < 2 || !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return otherSide, "", false
	}
	inner := strings.TrimSpace(body[1 : len(body)-1])
	if len(inner) >= 2 && strings.HasPrefix(inner, "$") && strings.HasSuffix(inner, "$") {
		core := inner[1 : len(inner)-1]
		if strings.Count(core, "$")%2 == 0 {
			inner = core
		}
	}
	return otherSide, inner, true
}

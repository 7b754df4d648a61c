package tikz

import "strings"

// StripComments removes LaTeX comments: everything from an unescaped % to
// the end of its line. A percent escaped as \% is literal text and does not
// open a comment.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return strings.Join(lines, "\n")
}

func stripLineComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}

var blockNames = []string{"circuitikz", "tikzpicture"}

// ExtractDrawingBlock returns the body between the first \begin{circuitikz}
// or \begin{tikzpicture} and the nearest \end of the same name. Comments
// are stripped before scanning, so commented-out markers never open or
// close a block. A begin with no matching end is skipped and the scan
// continues; ok is false when no complete block exists.
func ExtractDrawingBlock(text string) (string, bool) {
	text = StripComments(text)
	pos := 0
	for {
		name, start, bodyStart := nextBegin(text, pos)
		if start < 0 {
			return "", false
		}
		if end := strings.Index(text[bodyStart:], `\end{`+name+`}`); end >= 0 {
			return text[bodyStart : bodyStart+end], true
		}
		pos = start + 1
	}
}

// nextBegin locates the earliest \begin marker at or after from. start is
// -1 when none remains.
func nextBegin(text string, from int) (name string, start, bodyStart int) {
	start = -1
	for _, n := range blockNames {
		marker := `\begin{` + n + `}`
		i := strings.Index(text[from:], marker)
		if i < 0 {
			continue
		}
		i += from
		if start < 0 || i < start {
			name, start, bodyStart = n, i, i+len(marker)
		}
	}
	return name, start, bodyStart
}

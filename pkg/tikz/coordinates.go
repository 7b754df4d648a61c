package tikz

import (
	"regexp"
	"strings"
)

var coordinateDeclRe = regexp.MustCompile(`(?s)\\coordinate\s*\((.*?)\)\s*at\s*\((.*?)\);`)

// ParseCoordinates collects the body's \coordinate (name) at (value);
// declarations into a name-to-value table. Values keep their parentheses.
// Positions that reference these names are not resolved by the converter;
// the table exists for inspection and diagnostics.
func ParseCoordinates(body string) map[string]string {
	coords := make(map[string]string)
	for _, m := range coordinateDeclRe.FindAllStringSubmatch(body, -1) {
		name := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		coords[name] = "(" + value + ")"
	}
	return coords
}

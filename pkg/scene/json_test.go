package scene

import (
	"bytes"
	"strings"
	"testing"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, v); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	return buf.String()
}

func TestEncodeEmptyDocument(t *testing.T) {
	got := encode(t, NewDocument())
	want := `{
  "version": "0.1",
  "components": []
}
`
	if got != want {
		t.Errorf("Unexpected encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeErrorDocument(t *testing.T) {
	got := encode(t, &ErrorDocument{Error: NoBlockMessage})
	want := `{
  "error": "No valid \\begin{circuitikz} block found."
}
`
	if got != want {
		t.Errorf("Unexpected encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNoBorderSentinel(t *testing.T) {
	// The zero opacity must appear in the output; importers match the
	// literal record to suppress the border.
	got := encode(t, NoBorder())
	want := `{
  "opacity": 0
}
`
	if got != want {
		t.Errorf("Unexpected encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeOmitsAbsentAttributes(t *testing.T) {
	comp := &ShapeComponent{Type: "rect", Position: Point{X: 1, Y: -2}}
	got := encode(t, comp)
	if strings.Contains(got, "null") {
		t.Errorf("Expected absent attributes omitted, not null:\n%s", got)
	}
	for _, key := range []string{"size", "text", "stroke", "fill", "label", "rotation", "scale"} {
		if strings.Contains(got, `"`+key+`"`) {
			t.Errorf("Expected %q omitted:\n%s", key, got)
		}
	}
}

func TestEncodeKeepsRawText(t *testing.T) {
	// Math and unicode pass through unescaped.
	value := "$a < b$"
	doc := NewDocument()
	doc.Components = append(doc.Components, &PathComponent{
		Type:   "path",
		Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		Label:  &ChainLabel{Value: &value, Distance: "0.12cm"},
		ID:     "µ amp",
	})
	got := encode(t, doc)
	if !strings.Contains(got, `"$a < b$"`) {
		t.Errorf("Expected raw math text, got:\n%s", got)
	}
	if !strings.Contains(got, `"µ amp"`) {
		t.Errorf("Expected raw unicode, got:\n%s", got)
	}
}

func TestEncodeDeviceListsAlwaysPresent(t *testing.T) {
	comp := &DeviceComponent{Type: "node", Options: []string{}, ID: "ground"}
	got := encode(t, comp)
	if !strings.Contains(got, `"options": []`) {
		t.Errorf("Expected empty options list present, got:\n%s", got)
	}
}

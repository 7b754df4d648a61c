package scene

import (
	"encoding/json"
	"io"
)

// EncodeJSON writes v in the importer's JSON shape: two-space indent, UTF-8
// passed through rather than escaped.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer) error { return EncodeJSON(w, d) }

// Encode writes the error document to w.
func (e *ErrorDocument) Encode(w io.Writer) error { return EncodeJSON(w, e) }

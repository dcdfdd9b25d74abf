// Package jsonutil holds the JSON encoding settings shared by report writers.
package jsonutil

import (
	"encoding/json"
	"io"
)

// Indent is the per-level indentation of pretty-printed reports.
const Indent = "  "

// EncodePretty writes v as indented JSON to w, followed by a newline.
// HTML characters are left unescaped so report strings (file names, read
// sequences) appear exactly as in the input.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

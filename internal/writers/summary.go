package writers

import (
	"io"

	"fqqc/internal/output"
	"fqqc/internal/qc"
)

func init() {
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatText, output.WriteText)
	Register(output.FormatHTML, func(w io.Writer, s qc.Summary) error {
		return output.WriteHTML(w, s, output.CurrentMeta())
	})
}

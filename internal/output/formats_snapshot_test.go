package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatHTML != "html" {
		t.Fatalf("output format constants changed")
	}
	if len(Formats) != 3 || Formats[0] != FormatJSON {
		t.Fatalf("Formats changed: %v", Formats)
	}
}

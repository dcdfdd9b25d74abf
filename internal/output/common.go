package output

// Output formats understood by the writers registry.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatText = "text"
)

// Formats lists every supported format in help order.
var Formats = []string{FormatJSON, FormatHTML, FormatText}

// Text report section names (FastQC-style ">>Name" blocks).
const (
	SectionBasic           = "Basic Statistics"
	SectionPerBaseQuality  = "Per base sequence quality"
	SectionPerSeqQuality   = "Per sequence quality scores"
	SectionPerBaseContent  = "Per base sequence content"
	SectionPerSeqGC        = "Per sequence GC content"
	SectionPerBaseN        = "Per base N content"
	SectionLengthDist      = "Sequence Length Distribution"
	SectionOverrepresented = "Overrepresented sequences"
)

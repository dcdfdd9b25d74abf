// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"fqqc/internal/qc"
)

// WriteText renders the summary as FastQC-style ">>Section" blocks, each a
// small TSV table closed by ">>END_MODULE".
func WriteText(w io.Writer, s qc.Summary) error {
	bw := bufio.NewWriter(w)
	tw := &textWriter{w: bw}

	tw.begin(SectionBasic, "#Measure", "Value")
	tw.row("Filename", s.Filename)
	tw.row("Total Sequences", fmt.Sprint(s.TotalReads))
	tw.row("Sequence length", lengthRange(s))
	tw.row("Average length", Float(s.AvgLength))
	tw.row("Mode length", fmt.Sprint(s.ModeLength))
	tw.row("%GC", Float(s.GCContent))
	tw.end()

	tw.begin(SectionPerBaseQuality, "#Base", "Mean")
	for i, q := range s.QualitiesPerPosition {
		tw.row(fmt.Sprint(i+1), Float(q))
	}
	tw.end()

	tw.begin(SectionPerSeqQuality, "#Quality", "Count")
	for _, k := range SortedKeys(s.PerSequenceQualityHistogram) {
		tw.row(fmt.Sprint(k), fmt.Sprint(s.PerSequenceQualityHistogram[k]))
	}
	tw.end()

	tw.begin(SectionPerBaseContent, "#Base", "G", "A", "T", "C")
	for i := range s.PercentA {
		tw.row(fmt.Sprint(i+1), Float(s.PercentG[i]), Float(s.PercentA[i]), Float(s.PercentT[i]), Float(s.PercentC[i]))
	}
	tw.end()

	tw.begin(SectionPerSeqGC, "#GC Content", "Count")
	for _, k := range SortedKeys(s.GCPercentHistogram) {
		tw.row(fmt.Sprint(k), fmt.Sprint(s.GCPercentHistogram[k]))
	}
	tw.end()

	tw.begin(SectionPerBaseN, "#Base", "N-Count")
	for i, n := range s.NContent {
		tw.row(fmt.Sprint(i+1), Float(n))
	}
	tw.end()

	tw.begin(SectionLengthDist, "#Length", "Count")
	for _, k := range SortedKeys(s.ReadLengthHistogram) {
		tw.row(fmt.Sprint(k), fmt.Sprint(s.ReadLengthHistogram[k]))
	}
	tw.end()

	tw.begin(SectionOverrepresented, "#Sequence", "Count", "Percentage")
	for _, o := range s.OverrepresentedSequences {
		tw.row(o.Sequence, fmt.Sprint(o.Count), Float(o.Percentage))
	}
	tw.end()

	if tw.err != nil {
		return tw.err
	}
	return bw.Flush()
}

func lengthRange(s qc.Summary) string {
	if s.MinLength == s.MaxLength {
		return fmt.Sprint(s.MinLength)
	}
	return fmt.Sprintf("%d-%d", s.MinLength, s.MaxLength)
}

// textWriter remembers the first write error so rows can be emitted without
// checking each one.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(cols ...string) {
	if t.err != nil {
		return
	}
	for i, c := range cols {
		if i > 0 {
			if _, t.err = io.WriteString(t.w, "\t"); t.err != nil {
				return
			}
		}
		if _, t.err = io.WriteString(t.w, c); t.err != nil {
			return
		}
	}
	_, t.err = io.WriteString(t.w, "\n")
}

func (t *textWriter) begin(section string, header ...string) {
	t.line(">>" + section)
	t.line(header...)
}

func (t *textWriter) row(cols ...string) { t.line(cols...) }

func (t *textWriter) end() { t.line(">>END_MODULE") }

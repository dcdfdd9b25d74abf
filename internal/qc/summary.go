package qc

import (
	"maps"
	"sort"
)

// OverrepresentedMinPercent is the exclusive lower bound for reporting a
// prefix as overrepresented.
const OverrepresentedMinPercent = 0.1

// Overrepresented is a read prefix seen in a notable share of reads.
type Overrepresented struct {
	Sequence   string
	Percentage float64
	Count      int64
}

// Summary is the finalized result of one pass. Per-position slices are
// indexed by 0-based read offset; histograms are keyed by bucket value.
type Summary struct {
	Filename   string
	TotalReads int64
	AvgLength  float64
	MinLength  int
	MaxLength  int
	ModeLength int
	GCContent  float64

	QualitiesPerPosition []float64
	ReadLengthHistogram  map[int]int64
	GCPercentHistogram   map[int]int64

	PercentA []float64
	PercentT []float64
	PercentG []float64
	PercentC []float64

	PerSequenceQualityHistogram map[int]int64
	NContent                    []float64

	OverrepresentedSequences []Overrepresented

	// UntrackedPrefixReads counts reads whose prefix was not tracked
	// because the prefix table was full. Not part of the report.
	UntrackedPrefixReads int64
}

func emptySummary(filename string) Summary {
	return Summary{
		Filename:                    filename,
		QualitiesPerPosition:        []float64{},
		ReadLengthHistogram:         map[int]int64{},
		GCPercentHistogram:          map[int]int64{},
		PercentA:                    []float64{},
		PercentT:                    []float64{},
		PercentG:                    []float64{},
		PercentC:                    []float64{},
		PerSequenceQualityHistogram: map[int]int64{},
		NContent:                    []float64{},
		OverrepresentedSequences:    []Overrepresented{},
	}
}

// Summary finalizes the accumulators. With no reads it returns a Summary
// whose numbers are zero and whose collections are empty.
// The Summary shares no memory with the Aggregator, so later Adds leave it
// unchanged.
func (a *Aggregator) Summary(filename string) Summary {
	s := emptySummary(filename)
	if a.reads == 0 {
		return s
	}

	s.TotalReads = a.reads
	s.AvgLength = float64(a.bases) / float64(a.reads)
	s.MinLength = a.minLen
	s.MaxLength = a.maxLen
	s.ModeLength = modeOf(a.lengths)
	s.GCContent = percent(a.gc, a.bases)

	s.ReadLengthHistogram = maps.Clone(a.lengths)
	s.GCPercentHistogram = maps.Clone(a.gcPercent)
	s.PerSequenceQualityHistogram = maps.Clone(a.avgQuality)

	n := len(a.pos)
	s.PercentA = make([]float64, n)
	s.PercentT = make([]float64, n)
	s.PercentG = make([]float64, n)
	s.PercentC = make([]float64, n)
	s.NContent = make([]float64, n)
	if a.qualRds > 0 {
		s.QualitiesPerPosition = make([]float64, n)
	}
	for i, p := range a.pos {
		s.PercentA[i] = percent(p.a, p.total)
		s.PercentT[i] = percent(p.t, p.total)
		s.PercentG[i] = percent(p.g, p.total)
		s.PercentC[i] = percent(p.c, p.total)
		s.NContent[i] = percent(p.n, p.total)
		if a.qualRds > 0 && p.total > 0 {
			s.QualitiesPerPosition[i] = float64(p.qualSum) / float64(p.total)
		}
	}

	s.OverrepresentedSequences = overrepresented(a.kmers.counts, a.reads)
	s.UntrackedPrefixReads = a.kmers.dropped
	return s
}

// percent is num*100/den, or 0 when den is 0. The multiply comes first so
// 1 in 1000 compares equal to 0.1.
func percent(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) * 100 / float64(den)
}

// modeOf returns the most frequent key; ties go to the smallest key.
func modeOf(hist map[int]int64) int {
	mode, best := 0, int64(0)
	for k, c := range hist {
		if c > best || (c == best && k < mode) {
			mode, best = k, c
		}
	}
	return mode
}

func overrepresented(counts map[string]int64, reads int64) []Overrepresented {
	out := []Overrepresented{}
	for kmer, c := range counts {
		pct := percent(c, reads)
		if pct > OverrepresentedMinPercent {
			out = append(out, Overrepresented{Sequence: kmer, Percentage: pct, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// internal/output/json.go
package output

import (
	"io"

	"fqqc/internal/jsonutil"
	"fqqc/internal/qc"
	"fqqc/pkg/api"
)

// ToAPISummary converts a domain Summary to the stable wire schema (v1).
// Nil collections become empty ones so the JSON never carries null.
func ToAPISummary(s qc.Summary) api.SummaryV1 {
	v := api.SummaryV1{
		Filename:                    s.Filename,
		TotalReads:                  s.TotalReads,
		AvgLength:                   s.AvgLength,
		MinLength:                   s.MinLength,
		MaxLength:                   s.MaxLength,
		ModeLength:                  s.ModeLength,
		GCContent:                   s.GCContent,
		QualitiesPerPosition:        floats(s.QualitiesPerPosition),
		ReadLengthHistogram:         hist(s.ReadLengthHistogram),
		GCPercentHistogram:          hist(s.GCPercentHistogram),
		PercentA:                    floats(s.PercentA),
		PercentT:                    floats(s.PercentT),
		PercentG:                    floats(s.PercentG),
		PercentC:                    floats(s.PercentC),
		PerSequenceQualityHistogram: hist(s.PerSequenceQualityHistogram),
		NContent:                    floats(s.NContent),
		OverrepresentedSequences:    make([]api.OverrepresentedV1, 0, len(s.OverrepresentedSequences)),
	}
	for _, o := range s.OverrepresentedSequences {
		v.OverrepresentedSequences = append(v.OverrepresentedSequences, api.OverrepresentedV1{
			Sequence:   o.Sequence,
			Percentage: o.Percentage,
			Count:      o.Count,
		})
	}
	return v
}

func floats(a []float64) []float64 {
	return append([]float64{}, a...)
}

func hist(m map[int]int64) map[int]int64 {
	out := make(map[int]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WriteJSON writes the v1 summary as pretty-indented JSON.
func WriteJSON(w io.Writer, s qc.Summary) error {
	return jsonutil.EncodePretty(w, ToAPISummary(s))
}

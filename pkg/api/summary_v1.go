// pkg/api/summary_v1.go
package api

import (
	"encoding/json"
	"fmt"
)

// SummaryV1 is the stable JSON schema for a QC report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Filename   string  `json:"filename"`
	TotalReads int64   `json:"total_reads"`
	AvgLength  float64 `json:"avg_length"`
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
	ModeLength int     `json:"mode_length"`
	GCContent  float64 `json:"gc_content"`

	QualitiesPerPosition []float64     `json:"qualities_per_position"`
	ReadLengthHistogram  map[int]int64 `json:"read_length_histogram"`
	GCPercentHistogram   map[int]int64 `json:"gc_percent_histogram"` // 0..100

	PercentA []float64 `json:"percent_a"`
	PercentT []float64 `json:"percent_t"`
	PercentG []float64 `json:"percent_g"`
	PercentC []float64 `json:"percent_c"`

	PerSequenceQualityHistogram map[int]int64 `json:"per_sequence_quality_histogram"` // 0..255
	NContent                    []float64     `json:"n_content"`

	OverrepresentedSequences []OverrepresentedV1 `json:"overrepresented_sequences"`
}

// OverrepresentedV1 is encoded as a [sequence, percentage, count] triple.
type OverrepresentedV1 struct {
	Sequence   string
	Percentage float64
	Count      int64
}

func (o OverrepresentedV1) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{o.Sequence, o.Percentage, o.Count})
}

func (o *OverrepresentedV1) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("overrepresented sequence: want 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &o.Sequence); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &o.Percentage); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &o.Count)
}

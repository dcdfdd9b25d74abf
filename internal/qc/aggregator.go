// internal/qc/aggregator.go
package qc

import (
	"context"
	"io"
	"math"

	"fqqc/internal/fastq"
)

const (
	// KmerLen is the prefix length tracked for overrepresented sequences.
	KmerLen = 10
	// DefaultKmerCap bounds the number of distinct prefixes tracked.
	DefaultKmerCap = 1 << 20

	// how often Accumulate polls ctx
	cancelCheckEvery = 4096
)

// Source yields reads until io.EOF. *fastq.Reader satisfies it.
type Source interface {
	Next() (fastq.Record, error)
}

// Options tunes an Aggregator. The zero value is usable.
type Options struct {
	// KmerCap is the maximum number of distinct prefixes tracked.
	// 0 means unbounded; negative selects DefaultKmerCap.
	KmerCap int

	// Progress, when set, is called after every counted read with the
	// cumulative number of bases seen.
	Progress func(bases int64)
}

// Aggregator accumulates statistics one read at a time.
// It is not safe for concurrent use.
type Aggregator struct {
	opt Options

	reads   int64
	bases   int64
	gc      int64
	minLen  int
	maxLen  int
	qualRds int64

	lengths    map[int]int64
	gcPercent  map[int]int64
	avgQuality map[int]int64

	pos   positional
	kmers *kmerTable
}

// NewAggregator returns an empty Aggregator.
func NewAggregator(opt Options) *Aggregator {
	capacity := opt.KmerCap
	if capacity < 0 {
		capacity = DefaultKmerCap
	}
	return &Aggregator{
		opt:        opt,
		lengths:    make(map[int]int64, 64),
		gcPercent:  make(map[int]int64, 101),
		avgQuality: make(map[int]int64, 64),
		kmers:      newKmerTable(KmerLen, capacity),
	}
}

// Add folds one read into the accumulators. qual is either empty or the
// same length as seq. Empty reads are ignored.
func (a *Aggregator) Add(seq, qual []byte) {
	n := len(seq)
	if n == 0 {
		return
	}

	a.reads++
	a.bases += int64(n)

	gc := 0
	for _, b := range seq {
		switch b {
		case 'G', 'g', 'C', 'c':
			gc++
		}
	}
	a.gc += int64(gc)
	a.gcPercent[int(math.Round(percent(int64(gc), int64(n))))]++

	a.lengths[n]++
	if a.reads == 1 || n < a.minLen {
		a.minLen = n
	}
	if n > a.maxLen {
		a.maxLen = n
	}

	a.pos.add(seq, qual)

	if len(qual) > 0 {
		sum := 0
		for _, q := range qual {
			sum += int(q)
		}
		avg := int(math.Round(float64(sum) / float64(n)))
		if avg > math.MaxUint8 {
			avg = math.MaxUint8
		}
		a.avgQuality[avg]++
		a.qualRds++
	}

	a.kmers.add(seq)

	if a.opt.Progress != nil {
		a.opt.Progress(a.bases)
	}
}

// Reads reports how many non-empty reads have been added.
func (a *Aggregator) Reads() int64 { return a.reads }

// Accumulate drains src into a fresh Aggregator and finalizes it.
// On any error, including cancellation, no Summary is returned.
func Accumulate(ctx context.Context, src Source, filename string, opt Options) (Summary, error) {
	agg := NewAggregator(opt)
	for i := 0; ; i++ {
		if i%cancelCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return Summary{}, ctx.Err()
			default:
			}
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, err
		}
		agg.Add(rec.Seq, rec.Qual)
	}
	return agg.Summary(filename), nil
}

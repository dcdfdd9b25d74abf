package cmdutil

import (
	"context"
	"io"
	"path/filepath"

	"fqqc/internal/fastq"
	"fqqc/internal/progress"
	"fqqc/internal/qc"
)

// AnalyzeConfig is what Analyze needs from the command line.
type AnalyzeConfig struct {
	Input       string
	PhredOffset int
	KmerCap     int
	Quiet       bool
}

// ReportName is the filename recorded in the summary for path.
func ReportName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// Analyze opens the input, streams it through the aggregator and returns the
// finished summary. Progress and warnings go to stderr unless quiet.
// It returns the first error encountered (including context cancellation).
func Analyze(ctx context.Context, cfg AnalyzeConfig, stderr io.Writer) (qc.Summary, error) {
	rd, err := fastq.Open(cfg.Input, fastq.Options{PhredOffset: cfg.PhredOffset})
	if err != nil {
		return qc.Summary{}, err
	}
	defer rd.Close()

	opt := qc.Options{KmerCap: cfg.KmerCap}
	var bar *progress.Bar
	if !cfg.Quiet && progress.Enabled(stderr) {
		bar = progress.Start(stderr, fastq.Size(cfg.Input))
		opt.Progress = bar.Observe
	}

	s, err := qc.Accumulate(ctx, rd, ReportName(cfg.Input), opt)
	bar.Finish(err == nil)
	if err != nil {
		return qc.Summary{}, err
	}

	if s.UntrackedPrefixReads > 0 {
		Warnf(stderr, cfg.Quiet, "prefix table full (%d distinct); %d reads with new prefixes were not counted for overrepresented sequences (raise --kmer-cap)",
			cfg.KmerCap, s.UntrackedPrefixReads)
	}
	return s, nil
}

// Package progress draws a byte-estimate progress bar while a file is read.
package progress

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

// BytesPerBase approximates on-disk FASTQ bytes per sequenced base: the
// quality line doubles the payload and headers add the rest.
const BytesPerBase = 1.5

// Bar tracks estimated bytes consumed against a known file size.
// A nil *Bar is a valid no-op.
type Bar struct {
	total int64
	bar   *pb.ProgressBar
}

// Enabled reports whether w is an interactive terminal worth drawing on.
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start begins drawing to w. total is the file size in bytes; 0 means unknown.
func Start(w io.Writer, total int64) *Bar {
	bar := pb.New64(total).
		SetTemplate(pb.Full).
		SetWriter(w).
		Set(pb.Bytes, true)
	bar.Start()
	return &Bar{total: total, bar: bar}
}

// Estimate converts cumulative bases to estimated bytes, capped at total
// when total is known.
func Estimate(bases, total int64) int64 {
	est := int64(float64(bases) * BytesPerBase)
	if total > 0 && est > total {
		est = total
	}
	return est
}

// Observe is a qc.Options.Progress callback.
func (b *Bar) Observe(bases int64) {
	if b == nil {
		return
	}
	b.bar.SetCurrent(Estimate(bases, b.total))
}

// Finish completes the bar; on success it jumps to 100%.
func (b *Bar) Finish(ok bool) {
	if b == nil {
		return
	}
	if ok && b.total > 0 {
		b.bar.SetCurrent(b.total)
	}
	b.bar.Finish()
}

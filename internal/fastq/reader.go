// internal/fastq/reader.go
package fastq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// DefaultPhredOffset is the Sanger / Illumina 1.8+ quality encoding.
const DefaultPhredOffset = 33

// ErrMalformed marks a record that cannot be turned into a read.
var ErrMalformed = errors.New("malformed record")

// Record is one read. Seq and Qual alias buffers owned by the Reader and are
// only valid until the next call to Next.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte // decoded Phred scores; empty for FASTA input
}

// Options controls decoding.
type Options struct {
	// PhredOffset is subtracted from every quality character.
	// 0 keeps the raw bytes.
	PhredOffset int
}

// Reader streams records from a FASTQ (or FASTA) file. Compression is
// detected by xopen.
type Reader struct {
	path   string
	r      *fastx.Reader // nil for empty input
	offset byte
	qual   []byte
}

// Open prepares path for reading. "-" reads standard input.
// Errors opening or sniffing the file are returned here, before any record.
func Open(path string, opt Options) (*Reader, error) {
	if opt.PhredOffset < 0 || opt.PhredOffset > 255 {
		return nil, fmt.Errorf("fastq: phred offset %d out of range [0,255]", opt.PhredOffset)
	}
	rd := &Reader{path: path, offset: byte(opt.PhredOffset)}
	if path == "-" && !xopen.IsStdin() {
		return nil, errors.New("fastq: no data piped on stdin")
	}
	if path != "-" {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("fastq: open %s: %w", path, err)
		}
		if fi.Mode().IsRegular() && fi.Size() == 0 {
			return rd, nil
		}
	}

	// Streams that decompress to nothing come back as a reader whose first
	// Read is io.EOF.
	r, err := fastx.NewReader(seq.Unlimit, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("fastq: open %s: %w", path, err)
	}
	rd.r = r
	return rd, nil
}

// Next returns the next record, or io.EOF once the input is exhausted.
func (rd *Reader) Next() (Record, error) {
	if rd.r == nil {
		return Record{}, io.EOF
	}
	rec, err := rd.r.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		if isMalformed(err) {
			return Record{}, fmt.Errorf("fastq: %s: %w: %v", rd.path, ErrMalformed, err)
		}
		return Record{}, fmt.Errorf("fastq: %s: %w", rd.path, err)
	}

	// fastx reuses records across files; Qual is stale for FASTA.
	s, q := rec.Seq.Seq, rec.Seq.Qual
	if !rd.r.IsFastq {
		q = nil
	}
	if len(q) > 0 && len(q) != len(s) {
		return Record{}, fmt.Errorf("fastq: read %s: %w: %d bases but %d quality values",
			rec.ID, ErrMalformed, len(s), len(q))
	}

	out := Record{ID: string(rec.ID), Seq: s}
	if len(q) == 0 {
		return out, nil
	}
	if cap(rd.qual) < len(q) {
		rd.qual = make([]byte, len(q))
	}
	rd.qual = rd.qual[:len(q)]
	for i, c := range q {
		if c < rd.offset {
			return Record{}, fmt.Errorf("fastq: read %s: %w: quality %q below phred offset %d at position %d",
				rec.ID, ErrMalformed, c, rd.offset, i)
		}
		rd.qual[i] = c - rd.offset
	}
	out.Qual = rd.qual
	return out, nil
}

func isMalformed(err error) bool {
	switch {
	case errors.Is(err, fastx.ErrUnequalSeqAndQual),
		errors.Is(err, fastx.ErrBadFASTQFormat),
		errors.Is(err, fastx.ErrNotFASTXFormat):
		return true
	}
	return strings.Contains(err.Error(), "unmatched length of sequence")
}

// Close releases the underlying file.
func (rd *Reader) Close() error {
	if rd.r == nil {
		return nil
	}
	rd.r.Close()
	return nil
}

// Size reports the on-disk size of path, or 0 when it is stdin or cannot be
// stat'ed. Used as the progress total.
func Size(path string) int64 {
	if path == "-" {
		return 0
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return 0
	}
	return fi.Size()
}

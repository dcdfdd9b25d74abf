// internal/writers/destination.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/klauspost/pgzip"
)

// Destination is a buffered report sink. Close flushes every layer and
// closes the file, if any.
type Destination struct {
	*bufio.Writer
	gz *pgzip.Writer
	f  *os.File
}

// Create opens path for writing. "" and "-" write to stdout; a ".gz" suffix
// compresses with parallel gzip.
func Create(path string, stdout io.Writer) (*Destination, error) {
	if path == "" || path == "-" {
		return &Destination{Writer: bufio.NewWriterSize(stdout, 64<<10)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	d := &Destination{f: f}
	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		d.gz = pgzip.NewWriter(f)
		w = d.gz
	}
	d.Writer = bufio.NewWriterSize(w, 64<<10)
	return d, nil
}

// Close flushes and closes. The first error wins.
func (d *Destination) Close() error {
	err := d.Flush()
	if d.gz != nil {
		if cerr := d.gz.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if d.f != nil {
		if cerr := d.f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// IsBrokenPipe reports whether err means the reader of stdout went away,
// as when the report is piped into head.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

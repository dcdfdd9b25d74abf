package integration

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"fqqc/internal/app"
)

func TestCancelledRun_Exit130(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cancel.fq")
	write(t, fn, strings.Repeat("@r\nACGTACGTACGT\n+\nIIIIIIIIIIII\n", 10_000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	code := app.RunContext(ctx, []string{"-q", fn}, &out, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("no report may be written after cancellation, got %q", out.String())
	}
}

// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// parse runs the command and returns the options handed to run (nil if run
// was not reached).
func parse(t *testing.T, args ...string) (*Options, string, error) {
	t.Helper()
	var got *Options
	cmd := NewCommand("fqqc", func(_ context.Context, o Options) error {
		got = &o
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return got, out.String(), err
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, _, err := parse(t, args...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o == nil {
		t.Fatalf("run not reached for %v", args)
	}
	return *o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-i", "reads.fq")
	if o.Input != "reads.fq" || o.Format != "json" || o.Output != "" || o.PhredOffset != 33 || o.KmerCap != 1<<20 || o.Quiet {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestPositionalInput(t *testing.T) {
	o := mustParse(t, "--format", "html", "-o", "r.html", "reads.fq.gz")
	if o.Input != "reads.fq.gz" || o.Format != "html" || o.Output != "r.html" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestStdinPositional(t *testing.T) {
	o := mustParse(t, "-q", "-")
	if o.Input != "-" || !o.Quiet {
		t.Errorf("bad parse %+v", o)
	}
}

func TestGlobMustMatchOneFile(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "a.fq"), nil, 0o644)
	o := mustParse(t, filepath.Join(dir, "*.fq"))
	if o.Input != filepath.Join(dir, "a.fq") {
		t.Errorf("glob not expanded: %+v", o)
	}

	_ = os.WriteFile(filepath.Join(dir, "b.fq"), nil, 0o644)
	_, _, err := parse(t, filepath.Join(dir, "*.fq"))
	if !IsUsage(err) {
		t.Fatalf("want usage error for multi-file glob, got %v", err)
	}
}

func TestNoInputPrintsHelp(t *testing.T) {
	o, out, err := parse(t)
	if err != nil || o != nil {
		t.Fatalf("want help only, got o=%v err=%v", o, err)
	}
	if !strings.Contains(out, "--phred-offset") {
		t.Fatalf("help missing flags:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	o, out, err := parse(t, "--version")
	if err != nil || o != nil || !strings.HasPrefix(out, "fqqc version ") {
		t.Fatalf("version: o=%v out=%q err=%v", o, out, err)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"-i", "a.fq", "b.fq"},
		{"a.fq", "b.fq"},
		{"-i", "a.fq", "--format", "pdf"},
		{"-i", "a.fq", "--phred-offset", "-1"},
		{"-i", "a.fq", "--kmer-cap", "-5"},
		{"-i", "a.fq", "--no-such-flag"},
	}
	for _, args := range cases {
		o, _, err := parse(t, args...)
		if err == nil || o != nil {
			t.Errorf("%v: expected error", args)
			continue
		}
		if !IsUsage(err) {
			t.Errorf("%v: want usage error, got %T %v", args, err, err)
		}
	}
}

// internal/cli/options.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fqqc/internal/cliutil"
	"fqqc/internal/fastq"
	"fqqc/internal/output"
	"fqqc/internal/qc"
	"fqqc/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input       string
	PhredOffset int

	// Analysis
	KmerCap int

	// Output
	Format string
	Output string

	// Misc
	Quiet bool
}

// UsageError marks a problem with the command line itself (exit code 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// IsUsage reports whether err came from command-line parsing or validation.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// NewCommand builds the root command. run is called with validated options;
// when no input is given the command prints its help instead.
func NewCommand(name string, run func(ctx context.Context, o Options) error) *cobra.Command {
	var o Options
	cmd := &cobra.Command{
		Use:   name + " [flags] [input.fastq[.gz] | -]",
		Short: "Quality-control statistics for a FASTQ file in one streaming pass",
		Long: name + ` reads a FASTQ (or FASTA) file once, optionally compressed, and reports
read-length, per-position base composition and quality, GC content, per-read
quality, N content and overrepresented read prefixes.`,
		Example: `  ` + name + ` reads.fastq.gz
  ` + name + ` -i reads.fq -f html -o report.html
  zcat reads.fq.gz | ` + name + ` -f text -`,
		Version:       version.Version,
		Args:          func(cmd *cobra.Command, args []string) error { return usage(cobra.MaximumNArgs(1)(cmd, args)) },
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.resolveInput(args); err != nil {
				return usage(err)
			}
			if o.Input == "" {
				return cmd.Help()
			}
			if err := o.Validate(); err != nil {
				return usage(err)
			}
			return run(cmd.Context(), o)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&o.Input, "input", "i", "", "input FASTQ/FASTA file (.gz/.bz2/.xz/.zst ok, '-' for STDIN)")
	flags.StringVarP(&o.Format, "format", "f", output.FormatJSON, "report format: "+strings.Join(output.Formats, " | "))
	flags.StringVarP(&o.Output, "output", "o", "", "report path (default STDOUT; '.gz' suffix compresses)")
	flags.IntVar(&o.PhredOffset, "phred-offset", fastq.DefaultPhredOffset, "quality character offset (0 keeps raw bytes)")
	flags.IntVar(&o.KmerCap, "kmer-cap", qc.DefaultKmerCap, "max distinct read prefixes tracked (0 = unlimited)")
	flags.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress progress bar and warnings")
	return cmd
}

// resolveInput merges the --input flag with an optional positional.
func (o *Options) resolveInput(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if o.Input != "" {
		return fmt.Errorf("input given twice: --input %q and %q", o.Input, args[0])
	}
	exp, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return err
	}
	if len(exp) != 1 {
		return fmt.Errorf("%q matched %d files; exactly one input is analyzed per run", args[0], len(exp))
	}
	o.Input = exp[0]
	return nil
}

// Validate applies CLI invariants.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New("an input file is required")
	}
	valid := false
	for _, f := range output.Formats {
		if o.Format == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid --format %q (want %s)", o.Format, strings.Join(output.Formats, ", "))
	}
	if o.PhredOffset < 0 || o.PhredOffset > 255 {
		return errors.New("--phred-offset must be between 0 and 255")
	}
	if o.KmerCap < 0 {
		return errors.New("--kmer-cap must be ≥ 0")
	}
	return nil
}

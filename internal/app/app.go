// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fqqc/internal/cli"
	"fqqc/internal/cmdutil"
	"fqqc/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

// RunContext parses argv, analyzes the input and writes the report.
// It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}
	cmd := cli.NewCommand("fqqc", func(ctx context.Context, o cli.Options) error {
		return report(ctx, o, stdout, stderr)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	switch {
	case err == nil:
		return ExitOK
	case cli.IsUsage(err):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return ExitUsage
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func report(ctx context.Context, o cli.Options, stdout, stderr io.Writer) error {
	s, err := cmdutil.Analyze(ctx, cmdutil.AnalyzeConfig{
		Input:       o.Input,
		PhredOffset: o.PhredOffset,
		KmerCap:     o.KmerCap,
		Quiet:       o.Quiet,
	}, stderr)
	if err != nil {
		return err
	}

	dst, err := writers.Create(o.Output, stdout)
	if err != nil {
		return err
	}
	if err := writers.Write(o.Format, dst, s); err != nil {
		_ = dst.Close()
		return fmt.Errorf("render %s report: %w", o.Format, err)
	}
	return dst.Close()
}

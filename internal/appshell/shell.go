// Package appshell adapts an app entry point to a process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
)

// Main runs an app entry point with SIGINT/SIGTERM wired to context
// cancellation and exits with its code. A second signal is not caught, so
// it kills the process.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	code := run(ctx, DefaultArgs(os.Args[1:], stdinPiped()), os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

// DefaultArgs fills in argv for a bare invocation: read STDIN when data is
// piped in, print help otherwise.
func DefaultArgs(argv []string, piped bool) []string {
	if len(argv) > 0 {
		return argv
	}
	if piped {
		return []string{"-"}
	}
	return []string{"-h"}
}

func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

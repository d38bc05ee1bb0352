// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pestitch/internal/appcore"
	"pestitch/internal/cli"
	"pestitch/internal/clibase"
	"pestitch/internal/cmdutil"
	"pestitch/internal/version"
	"pestitch/internal/writers"
)

// Name is the command name shown in usage and version output.
const Name = "stitch"

// flushCode flushes w and maps the result onto an exit code.
func flushCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(Name)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, Name)
			return flushCode(outw, stderr, appcore.ExitOK)
		}
		cmdutil.Errorf(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return appcore.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return flushCode(outw, stderr, appcore.ExitOK)
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Forward:     opts.Forward,
		Reverse:     opts.Reverse,
		Output:      opts.Output,
		Unstitched1: opts.Unstitched1,
		Unstitched2: opts.Unstitched2,
		Log:         opts.Log,
		DovetailLog: opts.DovetailLog,
		Header:      opts.Header,
		Params:      opts.Params(),
		Threads:     opts.Threads,
		BatchSize:   opts.BatchSize,
		Verbose:     opts.Verbose,
		Quiet:       opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

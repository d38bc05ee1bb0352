// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"

	"pestitch-core/stitch"
	"pestitch/internal/cmdutil"
	"pestitch/internal/pipeline"
	"pestitch/internal/runutil"
	"pestitch/internal/seqio"
	"pestitch/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Forward string
	Reverse string

	Output      string
	Unstitched1 string
	Unstitched2 string
	Log         string
	DovetailLog string
	Header      bool

	Params stitch.Params

	Threads   int
	BatchSize int

	Verbose bool
	Quiet   bool
}

// Run stitches o.Forward and o.Reverse into the configured outputs and
// returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	if err := o.Params.Validate(); err != nil {
		cmdutil.Errorf(stderr, err)
		return ExitUsage
	}
	side, warns := runutil.ResolveSideOutputs(o.Unstitched1, o.Unstitched2, o.DovetailLog, o.Params.Dovetail)
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	r1, err := seqio.Open(o.Forward)
	if err != nil {
		cmdutil.Errorf(stderr, err)
		return ExitRuntime
	}
	defer r1.Close()
	r2, err := seqio.Open(o.Reverse)
	if err != nil {
		cmdutil.Errorf(stderr, err)
		return ExitRuntime
	}
	defer r2.Close()

	sinks, err := openSinks(o, side, stdout)
	if err != nil {
		cmdutil.Errorf(stderr, err)
		return ExitRuntime
	}
	defer sinks.Close()

	thr := runutil.EffectiveThreads(o.Threads)
	if o.Verbose && !o.Quiet {
		cmdutil.Infof(stderr, "stitching %s + %s with %d worker(s), min overlap %d, mismatch %g",
			o.Forward, o.Reverse, thr, o.Params.MinOverlap, o.Params.Mismatch)
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// A failed write stops the pipeline; the write error is reported below.
	inCh, writeErr := writers.StartResultWriter(sinks.Sinks, o.Header, thr*4,
		func(error) { cancel() })

	sum := NewSummary(o.Verbose)
	_, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: thr, BatchSize: o.BatchSize},
		seqio.Pairs(r1, r2),
		pipeline.FromParams(o.Params),
		sum.Observe,
		func(r stitch.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		cmdutil.Errorf(stderr, werr)
		return ExitRuntime
	}
	if e := sinks.Close(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		cmdutil.Errorf(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		cmdutil.Errorf(stderr, perr)
		return ExitRuntime
	}

	if o.Verbose {
		dst := stdout
		if o.Output == "-" {
			dst = stderr
		}
		if err := sum.Write(dst); err != nil && !writers.IsBrokenPipe(err) {
			cmdutil.Errorf(stderr, err)
			return ExitRuntime
		}
	}
	return ExitOK
}

package appcore

import (
	"bufio"
	"io"

	"pestitch/internal/runutil"
	"pestitch/internal/seqio"
	"pestitch/internal/writers"
)

// openedSinks pairs the writer sinks with the files behind them.
type openedSinks struct {
	writers.Sinks
	closers []io.Closer
}

// Close flushes and closes every opened output, returning the first error.
func (o *openedSinks) Close() error {
	var err error
	for _, c := range o.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	o.closers = nil
	return err
}

type flushCloser struct{ *bufio.Writer }

func (f flushCloser) Close() error { return f.Flush() }

// openSinks creates the configured outputs. "-" for the stitched output
// means stdout. On error, outputs opened so far are closed.
func openSinks(o Options, side runutil.SideOutputs, stdout io.Writer) (*openedSinks, error) {
	s := &openedSinks{}
	open := func(path string) (io.Writer, error) {
		if path == "-" {
			bw := bufio.NewWriter(stdout)
			s.closers = append(s.closers, flushCloser{bw})
			return bw, nil
		}
		w, err := seqio.Create(path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, w)
		return w, nil
	}

	var err error
	if s.Stitched, err = open(o.Output); err != nil {
		_ = s.Close()
		return nil, err
	}
	if side.Unstitched {
		if s.Un1, err = open(o.Unstitched1); err != nil {
			_ = s.Close()
			return nil, err
		}
		if s.Un2, err = open(o.Unstitched2); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	if o.Log != "" {
		if s.Log, err = open(o.Log); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	if side.DovetailLog {
		if s.Dovetail, err = open(o.DovetailLog); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"pestitch-core/stitch"
	"pestitch/internal/output"
)

// Sinks are the destinations of a stitching run. A nil sink is skipped.
// Unstitched reads are written only when both Un1 and Un2 are set.
type Sinks struct {
	Stitched io.Writer
	Un1      io.Writer
	Un2      io.Writer
	Log      io.Writer
	Dovetail io.Writer
}

// WriteHeaders emits the header rows of the configured logs.
func (s Sinks) WriteHeaders() error {
	if s.Log != nil {
		if _, err := fmt.Fprintln(s.Log, output.LogHeader); err != nil {
			return err
		}
	}
	if s.Dovetail != nil {
		if _, err := fmt.Fprintln(s.Dovetail, output.DovetailHeader); err != nil {
			return err
		}
	}
	return nil
}

// Write routes one result to every sink it belongs in.
func (s Sinks) Write(r *stitch.Result) error {
	if !r.Found {
		if s.Log != nil {
			if err := output.WriteLogRow(s.Log, r); err != nil {
				return err
			}
		}
		if s.Un1 != nil && s.Un2 != nil {
			if err := output.WriteRecord(s.Un1, &r.Pair.Fwd); err != nil {
				return err
			}
			return output.WriteRecord(s.Un2, &r.Pair.Rev)
		}
		return nil
	}
	if s.Log != nil {
		if err := output.WriteLogRow(s.Log, r); err != nil {
			return err
		}
	}
	if s.Dovetail != nil {
		if err := output.WriteDovetailRow(s.Dovetail, r); err != nil {
			return err
		}
	}
	if s.Stitched != nil {
		return output.WriteStitched(s.Stitched, r)
	}
	return nil
}

// StartResultWriter spins up a writer goroutine for stitch results.
// Header rows are written first when header is set. onErr, if non-nil, is
// called once with the first write error so the producer can stop early.
// After that error the goroutine keeps draining the channel so senders never
// block; the error is reported once the channel is closed.
func StartResultWriter(s Sinks, header bool, bufSize int, onErr func(error)) (chan<- stitch.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan stitch.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if header {
			err = s.WriteHeaders()
			if err != nil && onErr != nil {
				onErr(err)
			}
		}
		for r := range in {
			if err != nil {
				continue
			}
			if err = s.Write(&r); err != nil && onErr != nil {
				onErr(err)
			}
		}
		errCh <- err
	}()

	return in, errCh
}

// IsBrokenPipe reports whether err is a broken or closed pipe, as when a
// downstream consumer like `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// internal/seqio/open.go
package seqio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/jgbaldwinbrown/csvh"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// multiWriteCloser flushes/closes writers in order on Close.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading. "-" is stdin. ".gz" files go through csvh,
// ".sz" files are snappy-framed, and other files are sniffed for the gzip
// magic number.
func Open(path string) (io.ReadCloser, error) {
	switch {
	case path == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasSuffix(path, ".gz"):
		r, err := csvh.OpenMaybeGz(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	case strings.HasSuffix(path, ".sz"):
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: snappy.NewReader(fh), closers: []io.Closer{fh}}, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Create opens path for buffered writing. ".gz" output is gzip-compressed
// via csvh and ".sz" output is snappy-framed. Close flushes.
func Create(path string) (io.WriteCloser, error) {
	if strings.HasSuffix(path, ".sz") {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		sw := snappy.NewBufferedWriter(fh)
		return &multiWriteCloser{Writer: sw, closers: []io.Closer{sw, fh}}, nil
	}
	w, err := csvh.CreateMaybeGz(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriterSize(w, 64<<10)
	return &multiWriteCloser{Writer: bw, closers: []io.Closer{flusher{bw}, w}}, nil
}

type flusher struct{ *bufio.Writer }

func (f flusher) Close() error { return f.Flush() }

// core/fastq/scanner.go
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var errEOF = errors.New("eof")

// Scanner reads 4-line FASTQ records. It is not safe for concurrent use.
//
// Blank lines between records are skipped and a trailing '\r' is removed
// from every line. The separator line is read but its content is ignored.
type Scanner struct {
	sc  *bufio.Scanner
	err error
	n   int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // long-read platforms emit very long lines
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Scanner{sc: sc}
}

// Scan reads the next record into rec. It returns false at end of input or
// on error; check Err afterwards. Once Scan returns false it never returns
// true again. Seq and Qual are freshly allocated on every call.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	var hdr []byte
	for {
		if !s.sc.Scan() {
			if s.err = s.sc.Err(); s.err == nil {
				s.err = errEOF
			}
			return false
		}
		if hdr = trimCR(s.sc.Bytes()); len(hdr) > 0 {
			break
		}
	}
	rec.Header = string(hdr[1:])

	line, ok := s.line()
	if !ok {
		return false
	}
	rec.Seq = append([]byte(nil), line...)
	if _, ok = s.line(); !ok {
		return false
	}
	if line, ok = s.line(); !ok {
		return false
	}
	rec.Qual = append([]byte(nil), line...)

	s.n++
	if len(rec.Seq) != len(rec.Qual) {
		s.err = &LengthMismatchError{Header: rec.Header, SeqLen: len(rec.Seq), QualLen: len(rec.Qual)}
		return false
	}
	return true
}

func (s *Scanner) line() ([]byte, bool) {
	if !s.sc.Scan() {
		if s.err = s.sc.Err(); s.err == nil {
			s.err = ErrTruncated
		}
		return nil, false
	}
	return trimCR(s.sc.Bytes()), true
}

// Records returns the number of complete records read so far.
func (s *Scanner) Records() int { return s.n }

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

// PairScanner scans two FASTQ streams in lockstep and checks that the
// paired headers agree.
type PairScanner struct {
	r1, r2 *Scanner
	err    error
	n      int
}

// NewPairScanner creates a pair scanner over forward (r1) and reverse (r2) streams.
func NewPairScanner(r1, r2 io.Reader) *PairScanner {
	return &PairScanner{r1: NewScanner(r1), r2: NewScanner(r2)}
}

// Scan reads the next pair into p. It returns false at the end of both
// streams or on the first error; check Err afterwards.
func (ps *PairScanner) Scan(p *Pair) bool {
	if ps.err != nil {
		return false
	}
	if !ps.r1.Scan(&p.Fwd) {
		if err := ps.r1.Err(); err != nil {
			ps.err = fmt.Errorf("forward reads: record %d: %w", ps.r1.Records()+1, err)
			return false
		}
		var extra Record
		if ps.r2.Scan(&extra) {
			ps.err = fmt.Errorf("forward reads ended before reverse reads: %w", ErrTruncated)
		} else if err := ps.r2.Err(); err != nil {
			ps.err = fmt.Errorf("reverse reads: record %d: %w", ps.r2.Records()+1, err)
		} else {
			ps.err = errEOF
		}
		return false
	}
	if !ps.r2.Scan(&p.Rev) {
		err := ps.r2.Err()
		if err == nil {
			err = ErrTruncated
		}
		ps.err = fmt.Errorf("reverse reads: record %d: %w", ps.r2.Records()+1, err)
		return false
	}
	id, err := ConsensusID(p.Fwd.Header, p.Rev.Header)
	if err != nil {
		ps.err = err
		return false
	}
	p.ID = id
	p.Index = ps.n
	ps.n++
	return true
}

// Err returns the scanning error, if any. It should be checked after Scan
// returns false.
func (ps *PairScanner) Err() error {
	if ps.err == errEOF {
		return nil
	}
	return ps.err
}

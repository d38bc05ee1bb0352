// core/fastq/record.go
package fastq

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a stream ends inside a record, or when one
// stream of a pair ends before the other.
var ErrTruncated = errors.New("truncated FASTQ input")

// Record is one 4-line FASTQ record. Header is the identifier line without
// its leading marker character; the separator line is not retained.
type Record struct {
	Header string
	Seq    []byte
	Qual   []byte
}

// Pair is a forward/reverse record pair read in lockstep. Index is the
// 0-based position of the pair in the input; ID is the consensus identifier.
type Pair struct {
	Index int
	ID    string
	Fwd   Record
	Rev   Record
}

// LengthMismatchError reports a record whose sequence and quality lengths differ.
type LengthMismatchError struct {
	Header  string
	SeqLen  int
	QualLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequence/quality scores do not match for %q (%d vs %d)", e.Header, e.SeqLen, e.QualLen)
}

// HeaderMismatchError reports paired identifiers that disagree before the
// first space.
type HeaderMismatchError struct {
	Fwd, Rev string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("%s: not matched in input files (mate header %q)", e.Fwd, e.Rev)
}

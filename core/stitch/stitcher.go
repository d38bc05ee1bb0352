// core/stitch/stitcher.go
package stitch

import (
	"fmt"

	"pestitch-core/fastq"
	"pestitch-core/seq"
)

// Result is the outcome for one read pair. When Found is false only Index,
// ID and Pair are set.
type Result struct {
	Index int
	ID    string
	Pair  fastq.Pair // original records, as read

	Found      bool
	Alignment  Alignment
	OverlapLen int
	Stitched   Read

	// FwdOverhang is the forward 3' tail beyond the end of the stitched read.
	// RevOverhang is the reverse read's 3' tail that extends past the forward
	// 5' start, in the reverse read's own orientation.
	FwdOverhang []byte
	RevOverhang []byte
}

// Dovetailed reports whether either read overhangs the other.
func (r *Result) Dovetailed() bool {
	return r.Found && (len(r.FwdOverhang) > 0 || r.Alignment.Offset < 0)
}

// Stitcher stitches read pairs. It owns scratch buffers for the normalized
// reverse read, so a Stitcher must not be shared between goroutines; use one
// per worker.
type Stitcher struct {
	p       Params
	revSeq  []byte
	revQual []byte
}

// New validates p and returns a Stitcher.
func New(p Params) (*Stitcher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Stitcher{p: p}, nil
}

// Params returns the search parameters.
func (s *Stitcher) Params() Params { return s.p }

// Stitch normalizes the reverse read, searches for the best overlap and, on
// success, builds the consensus read. A reverse base without a complement is
// the only error.
func (s *Stitcher) Stitch(pair *fastq.Pair) (Result, error) {
	res := Result{Index: pair.Index, ID: pair.ID, Pair: *pair}

	var err error
	s.revSeq, err = seq.Orient(s.revSeq[:0], pair.Rev.Seq, seq.ReverseComplemented)
	if err != nil {
		return res, fmt.Errorf("%s: %w", pair.Rev.Header, err)
	}
	s.revQual, _ = seq.Orient(s.revQual[:0], pair.Rev.Qual, seq.Reversed)

	fwd := Read{Seq: pair.Fwd.Seq, Qual: pair.Fwd.Qual}
	rev := Read{Seq: s.revSeq, Qual: s.revQual}

	aln, ok := FindBestOffset(fwd.Seq, rev.Seq, s.p)
	if !ok {
		return res, nil
	}
	len1, len2, pos := len(fwd.Seq), len(rev.Seq), aln.Offset
	res.Found = true
	res.Alignment = aln
	res.OverlapLen = OverlapLen(len1, len2, pos)
	if len1 > len2+pos {
		res.FwdOverhang = append([]byte(nil), fwd.Seq[len2+pos:]...)
	}
	if pos < 0 {
		res.RevOverhang, _ = seq.RevComp(rev.Seq[:-pos])
	}
	res.Stitched = Merge(fwd, rev, pos)
	return res, nil
}

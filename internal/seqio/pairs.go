package seqio

import (
	"io"

	"github.com/jgbaldwinbrown/iter"

	"pestitch-core/fastq"
)

// Pairs iterates over the read pairs of two FASTQ streams. Iterate returns
// the first scanning error (truncation, header or length mismatch), or the
// error returned by yield.
func Pairs(r1, r2 io.Reader) *iter.Iterator[fastq.Pair] {
	return &iter.Iterator[fastq.Pair]{Iteratef: func(yield func(fastq.Pair) error) error {
		ps := fastq.NewPairScanner(r1, r2)
		var p fastq.Pair
		for ps.Scan(&p) {
			if err := yield(p); err != nil {
				return err
			}
			p = fastq.Pair{}
		}
		return ps.Err()
	}}
}

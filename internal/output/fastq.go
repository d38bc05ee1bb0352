package output

import (
	"fmt"
	"io"

	"pestitch-core/fastq"
	"pestitch-core/stitch"
)

// WriteFASTQ writes one four-line record.
func WriteFASTQ(w io.Writer, header string, seq, qual []byte) error {
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", header, seq, qual)
	return err
}

// WriteStitched writes the consensus read under the pair's identifier.
func WriteStitched(w io.Writer, r *stitch.Result) error {
	return WriteFASTQ(w, r.ID, r.Stitched.Seq, r.Stitched.Qual)
}

// WriteRecord writes a record exactly as it was read.
func WriteRecord(w io.Writer, rec *fastq.Record) error {
	return WriteFASTQ(w, rec.Header, rec.Seq, rec.Qual)
}

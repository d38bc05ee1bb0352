// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pestitch-core/stitch"
)

// WriteLogRow prints one stitching log line: identifier, overlap length,
// stitched length and mismatch score, or "n/a" for a failed pair.
func WriteLogRow(w io.Writer, r *stitch.Result) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "%s\tn/a\n", r.ID)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
		r.ID, r.OverlapLen, len(r.Stitched.Seq), FormatScore(r.Alignment.Score))
	return err
}

// WriteDovetailRow prints the 3' overhangs of a dovetailed pair. Pairs that
// do not overhang write nothing.
func WriteDovetailRow(w io.Writer, r *stitch.Result) error {
	if !r.Dovetailed() {
		return nil
	}
	fwd, rev := Missing, Missing
	if len(r.FwdOverhang) > 0 {
		fwd = string(r.FwdOverhang)
	}
	if len(r.RevOverhang) > 0 {
		rev = string(r.RevOverhang)
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, fwd, rev)
	return err
}

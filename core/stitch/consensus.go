package stitch

// Read is a sequence with its per-base quality string, in forward orientation.
type Read struct {
	Seq  []byte
	Qual []byte
}

// Merge builds the stitched read for offset pos. Its length is
// len(rev.Seq)+pos. Positions covered by one read copy that read. Where both
// reads agree the higher quality is kept. Where they disagree the base with
// the higher quality wins; on equal quality the base nearer to its own read's
// 5' end wins, and the forward read wins when the distances are equal.
//
// fwd and rev are not modified.
func Merge(fwd, rev Read, pos int) Read {
	len1, len2 := len(fwd.Seq), len(rev.Seq)
	n := len2 + pos
	out := Read{Seq: make([]byte, n), Qual: make([]byte, n)}
	for i := 0; i < n; i++ {
		j := i - pos
		switch {
		case j < 0:
			out.Seq[i], out.Qual[i] = fwd.Seq[i], fwd.Qual[i]
		case i >= len1:
			out.Seq[i], out.Qual[i] = rev.Seq[j], rev.Qual[j]
		case fwd.Seq[i] != rev.Seq[j] &&
			(fwd.Qual[i] < rev.Qual[j] || (fwd.Qual[i] == rev.Qual[j] && i > len2-1-j)):
			// rev index measured from its own 5' end is len2-1-j
			out.Seq[i], out.Qual[i] = rev.Seq[j], rev.Qual[j]
		default:
			out.Seq[i], out.Qual[i] = fwd.Seq[i], max(fwd.Qual[i], rev.Qual[j])
		}
	}
	return out
}

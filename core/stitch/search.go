// core/stitch/search.go
package stitch

// Alignment is an accepted offset of the normalized reverse read relative to
// the start of the forward read, with its mismatch score (0 = perfect).
// A negative offset means the reverse read extends past the forward 5' end.
type Alignment struct {
	Offset int
	Score  float32
}

// FindBestOffset searches for the best alignment of rev (already
// reverse-complemented) against fwd.
//
// Offsets are scanned from len(fwd)-MinOverlap down to 0, then, with
// Dovetail, from -1 downwards while the reverse read still overlaps by
// MinOverlap. Scan order runs from the longest stitched read to the shortest,
// so keeping the first of equal scores yields the longest result and letting
// later ties replace it (PreferShortest) yields the shortest. Under the
// longest policy the first perfect score ends the search.
//
// Without Dovetail the primary scan stops at the first offset where the
// reverse read would lie entirely inside the forward read.
func FindBestOffset(fwd, rev []byte, p Params) (Alignment, bool) {
	len1, len2 := len(fwd), len(rev)
	var (
		best  Alignment
		found bool
	)
	// consider reports whether the search may stop.
	consider := func(off int, a, b []byte, n int) bool {
		score, ok := compare(a, b, n, p.Mismatch, p.MinOverlap)
		if !ok {
			return false
		}
		if !found || score < best.Score || (score == best.Score && p.PreferShortest) {
			best = Alignment{Offset: off, Score: score}
			found = true
		}
		return score == 0 && !p.PreferShortest
	}

	for i := len1 - p.MinOverlap; i >= 0; i-- {
		if len1-i > len2 && !p.Dovetail {
			break
		}
		if consider(i, fwd[i:], rev, min(len1-i, len2)) {
			return best, true
		}
	}
	if p.Dovetail {
		for i := 1; len2-i >= p.MinOverlap; i++ {
			if consider(-i, fwd, rev[i:], min(len2-i, len1)) {
				return best, true
			}
		}
	}
	return best, found
}

// OverlapLen is the number of positions shared by the two reads at offset pos.
func OverlapLen(len1, len2, pos int) int {
	if pos < 0 {
		return min(len2+pos, len1)
	}
	return min(len1-pos, len2)
}

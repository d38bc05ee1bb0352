package stitch

// compare scores the first length positions of a against b. Positions where
// either base is N are dropped from the overlap. The allowance of mismatches
// is refreshed only when an N shrinks the overlap; each plain mismatch is
// checked against the allowance as it stands. float32 is used throughout so
// the accept/reject boundary is stable for a given fraction.
//
// ok is false when discounting an N leaves fewer than minOverlap positions,
// or the mismatches exceed the allowance. An overlap that starts shorter than
// minOverlap is still scored as long as it holds no N. An empty overlap never
// aligns.
func compare(a, b []byte, length int, mismatch float32, minOverlap int) (score float32, ok bool) {
	mis := 0
	n := length
	allow := float32(n) * mismatch
	for i := 0; i < length; i++ {
		if a[i] == 'N' || b[i] == 'N' {
			n--
			if n < minOverlap || float32(mis) > float32(n)*mismatch {
				return 0, false
			}
			allow = float32(n) * mismatch
		} else if a[i] != b[i] {
			mis++
			if float32(mis) > allow {
				return 0, false
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return float32(mis) / float32(n), true
}

package fastq

// ConsensusID compares two header lines position by position over the length
// of the second. A difference is fatal unless both headers already agreed on
// a space; after that the comparison simply stops. The shared prefix, minus
// one trailing space, is the consensus identifier.
func ConsensusID(h1, h2 string) (string, error) {
	spaced := false
	j := 0
	for ; j < len(h2); j++ {
		var c byte
		if j < len(h1) {
			c = h1[j]
		}
		if c != h2[j] {
			if spaced {
				break
			}
			return "", &HeaderMismatchError{Fwd: h1, Rev: h2}
		}
		if c == ' ' {
			spaced = true
		}
	}
	id := h1[:j]
	if j > 0 && id[j-1] == ' ' {
		id = id[:j-1]
	}
	return id, nil
}

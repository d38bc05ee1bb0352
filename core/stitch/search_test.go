// core/stitch/search_test.go
package stitch

import (
	"strings"
	"testing"
)

func params(minOv int, mm float32, dove, shortest bool) Params {
	return Params{MinOverlap: minOv, Mismatch: mm, Dovetail: dove, PreferShortest: shortest}
}

func TestFindBestOffsetExactOverlap(t *testing.T) {
	fwd := []byte("ACGTACGTAA")
	rev := []byte("ACGTAAGGCC")
	aln, ok := FindBestOffset(fwd, rev, params(4, 0, false, false))
	if !ok {
		t.Fatal("expected an alignment")
	}
	if aln.Offset != 4 || aln.Score != 0 {
		t.Fatalf("got %+v, want offset 4 score 0", aln)
	}
	if got := len(rev) + aln.Offset; got != 14 {
		t.Fatalf("stitched length %d, want 14", got)
	}
}

func TestFindBestOffsetNoMatch(t *testing.T) {
	fwd := []byte(strings.Repeat("AC", 15))
	rev := []byte(strings.Repeat("GT", 15))
	if aln, ok := FindBestOffset(fwd, rev, params(10, 0.2, true, false)); ok {
		t.Fatalf("dissimilar reads aligned: %+v", aln)
	}
}

func TestFindBestOffsetTieBreak(t *testing.T) {
	fwd := []byte("AAAAAAAAAA")
	rev := []byte("AAAAAAAAAA")

	longest, ok := FindBestOffset(fwd, rev, params(4, 0, false, false))
	if !ok || longest.Offset != 6 {
		t.Fatalf("longest: %+v ok=%v, want offset 6", longest, ok)
	}
	shortest, ok := FindBestOffset(fwd, rev, params(4, 0, false, true))
	if !ok || shortest.Offset != 0 {
		t.Fatalf("shortest: %+v ok=%v, want offset 0", shortest, ok)
	}
	if len(rev)+longest.Offset <= len(rev)+shortest.Offset {
		t.Fatal("longest policy must not produce the shorter read")
	}

	dove, ok := FindBestOffset(fwd, rev, params(4, 0, true, true))
	if !ok || dove.Offset != -6 {
		t.Fatalf("shortest with dovetail: %+v, want offset -6", dove)
	}
}

func TestFindBestOffsetLowerScoreWins(t *testing.T) {
	// offset 6 passes with one mismatch in 4; offset 2 is perfect over 8.
	fwd := []byte("TTAATCAATG")
	rev := []byte("AATCAATGCC")
	aln, ok := FindBestOffset(fwd, rev, params(4, 0.3, false, false))
	if !ok || aln.Offset != 2 || aln.Score != 0 {
		t.Fatalf("got %+v ok=%v, want offset 2 score 0", aln, ok)
	}
}

func TestFindBestOffsetContainmentNeedsDovetail(t *testing.T) {
	fwd := []byte("GATTACAGGC")
	rev := []byte("TCGATTACAG")
	if aln, ok := FindBestOffset(fwd, rev, params(4, 0, false, false)); ok {
		t.Fatalf("without dovetail: unexpected %+v", aln)
	}
	aln, ok := FindBestOffset(fwd, rev, params(4, 0, true, false))
	if !ok || aln.Offset != -2 {
		t.Fatalf("with dovetail: %+v ok=%v, want offset -2", aln, ok)
	}
}

func TestFindBestOffsetShortReverseStopsScan(t *testing.T) {
	// rev is 6 long and matches inside fwd; without dovetail the scan stops
	// once rev would be contained.
	fwd := []byte("CCCCACGTACGG")
	rev := []byte("ACGTAC")
	if aln, ok := FindBestOffset(fwd, rev, params(4, 0, false, false)); ok {
		t.Fatalf("contained read stitched without dovetail: %+v", aln)
	}
	aln, ok := FindBestOffset(fwd, rev, params(4, 0, true, false))
	if !ok || aln.Offset != 4 {
		t.Fatalf("dovetail: %+v ok=%v, want offset 4", aln, ok)
	}
}

func TestFindBestOffsetReverseShorterThanMinOverlap(t *testing.T) {
	// rev (6) is shorter than the minimum overlap (8). With dovetail the
	// first offset scanned compares all of rev and accepts it.
	fwd := []byte(strings.Repeat("G", 20) + "ACGTAC" + "TT")
	rev := []byte("ACGTAC")
	if aln, ok := FindBestOffset(fwd, rev, params(8, 0, false, false)); ok {
		t.Fatalf("without dovetail: unexpected %+v", aln)
	}
	aln, ok := FindBestOffset(fwd, rev, params(8, 0, true, false))
	if !ok || aln.Offset != 20 || aln.Score != 0 {
		t.Fatalf("with dovetail: %+v ok=%v, want offset 20 score 0", aln, ok)
	}

	// An N in the short overlap leaves 5 positions, below the minimum of 6.
	revN := []byte("ACGNAC")
	if aln, ok := FindBestOffset(fwd, revN, params(6, 0, true, false)); ok {
		t.Fatalf("N below minimum overlap: unexpected %+v", aln)
	}
	aln, ok = FindBestOffset(fwd, revN, params(5, 0, true, false))
	if !ok || aln.Offset != 20 {
		t.Fatalf("N at minimum overlap: %+v ok=%v, want offset 20", aln, ok)
	}
}

func TestFindBestOffsetEmptyReverse(t *testing.T) {
	if aln, ok := FindBestOffset([]byte("ACGTACGT"), nil, params(4, 0, true, true)); ok {
		t.Fatalf("empty reverse read aligned: %+v", aln)
	}
}

func TestOverlapLen(t *testing.T) {
	cases := []struct{ l1, l2, pos, want int }{
		{10, 10, 4, 6},
		{10, 6, 2, 6},
		{10, 10, -2, 8},
		{5, 10, -2, 5},
	}
	for _, c := range cases {
		if got := OverlapLen(c.l1, c.l2, c.pos); got != c.want {
			t.Errorf("OverlapLen(%d,%d,%d) = %d, want %d", c.l1, c.l2, c.pos, got, c.want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	bad := []Params{
		{MinOverlap: 0},
		{MinOverlap: -3},
		{MinOverlap: 5, Mismatch: 1},
		{MinOverlap: 5, Mismatch: -0.1},
	}
	for _, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", p)
		}
	}
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

package stitch

import "testing"

func TestCompareBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		a, b     string
		mismatch float32
		minOv    int
		ok       bool
		score    float32
	}{
		{"perfect", "ACGTACGTAC", "ACGTACGTAC", 0, 4, true, 0},
		{"one mismatch, zero allowed", "ACGTACGTAC", "ACGTTCGTAC", 0, 4, false, 0},
		{"one of ten at 0.1", "ACGTACGTAC", "ACGTTCGTAC", 0.1, 4, true, 0.1},
		{"two of ten at 0.1", "ACGTACGTAC", "TCGTTCGTAC", 0.1, 4, false, 0},
		{"N shrinks budget below tally", "TCGTANGTAC", "ACGTACGTAC", 0.1, 4, false, 0},
		{"N on other read", "ACGTACGTAC", "ACGTNCGTAC", 0, 4, true, 0},
		{"Ns below min overlap", "ACNNNCGTAC", "ACGTACGTAC", 0, 8, false, 0},
		{"Ns exactly at min overlap", "ACNNCGTACA", "ACGTCGTACA", 0, 8, true, 0},
		{"short overlap without N", "ACG", "ACG", 0, 4, true, 0},
		{"short overlap with mismatch", "ACGTAC", "ACGTTC", 0.2, 8, true, float32(1) / 6},
		{"short overlap loses a base to N", "ACNTAC", "ACGTAC", 0, 4, true, 0},
		{"short overlap drops below min on N", "ACNTAC", "ACGTAC", 0, 6, false, 0},
		{"empty overlap", "", "", 0, 4, false, 0},
	}
	for _, c := range cases {
		score, ok := compare([]byte(c.a), []byte(c.b), len(c.a), c.mismatch, c.minOv)
		if ok != c.ok || (ok && score != c.score) {
			t.Errorf("%s: compare = (%v,%v), want (%v,%v)", c.name, score, ok, c.score, c.ok)
		}
	}
}

func TestCompareNDiscountRaisesScore(t *testing.T) {
	a := []byte("ACGTACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGTACGA")
	base, ok := compare(a, b, len(a), 0.1, 10)
	if !ok {
		t.Fatal("baseline should pass")
	}
	for i := 0; i < len(a)-1; i++ {
		n := append([]byte(nil), a...)
		n[i] = 'N'
		got, ok := compare(n, b, len(n), 0.1, 10)
		if !ok {
			t.Fatalf("N at %d rejected a passing alignment", i)
		}
		if got < base {
			t.Fatalf("N at %d lowered score %v -> %v", i, base, got)
		}
	}
}

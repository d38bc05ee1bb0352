package integration

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/fasttsv"

	"pestitch-core/seq"
	"pestitch/internal/app"
	"pestitch/internal/seqio"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	w, err := seqio.Create(fn)
	if err != nil {
		t.Fatalf("create %s: %v", fn, err)
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close %s: %v", fn, err)
	}
	return fn
}

func read(t *testing.T, fn string) string {
	t.Helper()
	r, err := seqio.Open(fn)
	if err != nil {
		t.Fatalf("open %s: %v", fn, err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

// tsvRows parses a TSV file into rows of fields.
func tsvRows(t *testing.T, fn string) [][]string {
	t.Helper()
	r, err := seqio.Open(fn)
	if err != nil {
		t.Fatalf("open %s: %v", fn, err)
	}
	defer r.Close()
	var rows [][]string
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		rows = append(rows, append([]string(nil), s.Line()...))
	}
	return rows
}

type result struct {
	code           int
	stdout, stderr string
}

func run(args ...string) result {
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return result{code: code, stdout: out.String(), stderr: errBuf.String()}
}

func fastqRec(header, s, q string) string {
	return "@" + header + "\n" + s + "\n+\n" + q + "\n"
}

func randomBases(rng *rand.Rand, n int) []byte {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(4)]
	}
	return b
}

// simulate builds n read pairs of readLen from random fragments of varying
// length. Fragments shorter than a read give dovetailed pairs, the longest
// ones overlap too little to stitch.
func simulate(t *testing.T, n, readLen int) (r1, r2 string) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	const bases = "ACGT"
	var b1, b2 strings.Builder
	for i := 0; i < n; i++ {
		fragLen := readLen - 10 + rng.Intn(readLen+20)
		frag := make([]byte, fragLen)
		for j := range frag {
			frag[j] = bases[rng.Intn(4)]
			if rng.Intn(200) == 0 {
				frag[j] = 'N'
			}
		}
		var fwd, tail []byte
		if fragLen >= readLen {
			fwd = frag[:readLen]
			tail = frag[fragLen-readLen:]
		} else {
			// Reads run past the fragment into adapter sequence.
			fwd = append(append([]byte(nil), frag...), randomBases(rng, readLen-fragLen)...)
			tail = append(randomBases(rng, readLen-fragLen), frag...)
		}
		rev, err := seq.RevComp(tail)
		if err != nil {
			t.Fatal(err)
		}
		if len(rev) > 3 && rng.Intn(4) == 0 {
			rev[rng.Intn(len(rev))] = 'A'
		}
		q1 := make([]byte, len(fwd))
		q2 := make([]byte, len(rev))
		for j := range q1 {
			q1[j] = byte('#' + rng.Intn(40))
		}
		for j := range q2 {
			q2[j] = byte('#' + rng.Intn(40))
		}
		id := fmt.Sprintf("SIM:%d:%d", i/100, i)
		b1.WriteString(fastqRec(id+" 1:N:0:1", string(fwd), string(q1)))
		b2.WriteString(fastqRec(id+" 2:N:0:1", string(rev), string(q2)))
	}
	return b1.String(), b2.String()
}

func mustExist(t *testing.T, fn string, want bool) {
	t.Helper()
	_, err := os.Stat(fn)
	if got := err == nil; got != want {
		t.Fatalf("%s exists=%v, want %v", fn, got, want)
	}
}

package seqio

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/jgbaldwinbrown/iter"

	"pestitch-core/fastq"
)

const fq = "@r1\nACGT\n+\nIIII\n"

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestCreateOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.fq", "zipped.fq.gz", "framed.fq.sz"} {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if _, err := io.WriteString(w, fq); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close %s: %v", name, err)
		}
		if got := readAll(t, path); got != fq {
			t.Fatalf("%s: round trip got %q", name, got)
		}
	}
}

func TestOpenSniffsGzipWithoutSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads_R1")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte(fq))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	_ = fh.Close()
	if got := readAll(t, path); got != fq {
		t.Fatalf("got %q", got)
	}
}

func TestOpenSnappyReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.fq.sz")
	fh, _ := os.Create(path)
	sw := snappy.NewBufferedWriter(fh)
	_, _ = sw.Write([]byte(fq))
	_ = sw.Close()
	_ = fh.Close()
	if got := readAll(t, path); got != fq {
		t.Fatalf("got %q", got)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fq")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPairsCollect(t *testing.T) {
	r1 := "@a 1\nAC\n+\nII\n@b 1\nGT\n+\nII\n"
	r2 := "@a 2\nGT\n+\nII\n@b 2\nAC\n+\nII\n"
	got, err := iter.Collect[fastq.Pair](Pairs(strings.NewReader(r1), strings.NewReader(r2)))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" || got[1].Index != 1 {
		t.Fatalf("pairs = %+v", got)
	}
	if string(got[0].Fwd.Seq) != "AC" || string(got[1].Rev.Seq) != "AC" {
		t.Fatal("records aliased across pairs")
	}
}

func TestPairsPropagatesScanError(t *testing.T) {
	_, err := iter.Collect[fastq.Pair](Pairs(strings.NewReader("@a\nAC\n+\nII\n"), strings.NewReader("@a\nAC\n")))
	if !errors.Is(err, fastq.ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

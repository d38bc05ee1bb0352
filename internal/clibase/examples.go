// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

var examples = []struct{ title, cmd string }{
	{"Stitch a gzipped run, keep failures and a log", "%s -1 R1.fq.gz -2 R2.fq.gz -o joined.fq.gz -u1 un1.fq -u2 un2.fq -l stitch.log"},
	{"Allow 10% mismatches over at least 15 bp", "%s -m 15 -p 0.1 R1.fq R2.fq > joined.fq"},
	{"Check for dovetailed pairs and log their overhangs", "%s -d -dl dove.tsv -1 R1.fq -2 R2.fq -o joined.fq"},
	{"Use all CPUs and print a summary", "%s -t 0 -ve R1.fq.gz R2.fq.gz -o joined.fq.sz"},
	{"Read defaults from a TOML file", "%s --config stitch.toml R1.fq R2.fq -o joined.fq"},
}

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	for _, ex := range examples {
		_, _ = fmt.Fprintf(out, "# %s\n", ex.title)
		_, _ = fmt.Fprintf(out, ex.cmd+"\n\n", name)
	}
	_, _ = fmt.Fprintln(out, "Tip: run with --help for all flags.")
}

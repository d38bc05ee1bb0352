// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"pestitch/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage lines, notes).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – paired-end read stitching\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -1, --forward file          Forward reads (FASTQ, optionally .gz/.sz) or '-' [*]")
		fmt.Fprintln(out, "  -2, --reverse file          Reverse reads (FASTQ, optionally .gz/.sz) or '-' [*]")
		fmt.Fprintln(out, "                              R1 R2 may also be given as positionals")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Stitched reads (FASTQ) or '-' for STDOUT [%s]\n", def("output"))
		fmt.Fprintln(out, "  -u1, --unstitched1 file     Non-stitched forward reads (needs -u2)")
		fmt.Fprintln(out, "  -u2, --unstitched2 file     Non-stitched reverse reads (needs -u1)")
		fmt.Fprintln(out, "  -l, --log file              Log file for stitching results")
		fmt.Fprintln(out, "  -dl, --dovetail-log file    Log file for dovetailed reads only (needs -d)")
		fmt.Fprintf(out, "      --no-header             Suppress log header lines [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nStitching:")
		fmt.Fprintf(out, "  -m, --min-overlap int       Minimum overlap of the paired reads [%s]\n", def("min-overlap"))
		fmt.Fprintf(out, "  -p, --mismatch float        Mismatch fraction allowed in the overlap, in [0,1) [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "  -d, --dovetail              Also check for dovetailed reads [%s]\n", def("dovetail"))
		fmt.Fprintf(out, "  -n, --shortest              Produce the shortest stitched read on ties [%s]\n", def("shortest"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --batch-size int        Read pairs per worker job [%s]\n", def("batch-size"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           TOML file with option defaults")
		fmt.Fprintf(out, "  -ve, --verbose              Print counts of stitching results [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

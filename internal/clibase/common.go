// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"pestitch-core/stitch"
	"pestitch/internal/pipeline"
)

// Common holds every CLI field of the stitch tool.
type Common struct {
	// Input
	Forward string
	Reverse string

	// Output
	Output      string
	Unstitched1 string
	Unstitched2 string
	Log         string
	DovetailLog string
	Header      bool

	// Stitching
	MinOverlap int
	Mismatch   float64
	Dovetail   bool
	Shortest   bool

	// Performance
	Threads   int
	BatchSize int

	// Misc
	Config   string
	Verbose  bool
	Quiet    bool
	Version  bool
	Examples bool
}

// Defaults returns the built-in option values.
func Defaults() Common {
	return Common{
		Output:     "-",
		Header:     true,
		MinOverlap: stitch.DefaultMinOverlap,
		Mismatch:   stitch.DefaultMismatch,
		Threads:    1,
		BatchSize:  pipeline.DefaultBatchSize,
	}
}

// Params converts the stitching fields to core parameters.
func (c *Common) Params() stitch.Params {
	return stitch.Params{
		MinOverlap:     c.MinOverlap,
		Mismatch:       float32(c.Mismatch),
		Dovetail:       c.Dovetail,
		PreferShortest: c.Shortest,
	}
}

// Register wires all flags onto fs, using the current values of c as
// defaults, and returns a pointer to the "no-header" bool that AfterParse
// folds into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Input
	fs.StringVar(&c.Forward, "forward", c.Forward, "forward-read FASTQ (R1) or '-'")
	fs.StringVar(&c.Forward, "1", c.Forward, "alias of --forward")
	fs.StringVar(&c.Reverse, "reverse", c.Reverse, "reverse-read FASTQ (R2) or '-'")
	fs.StringVar(&c.Reverse, "2", c.Reverse, "alias of --reverse")

	// Output
	fs.StringVar(&c.Output, "output", c.Output, "stitched FASTQ output or '-' [-]")
	fs.StringVar(&c.Output, "o", c.Output, "alias of --output")
	fs.StringVar(&c.Unstitched1, "unstitched1", c.Unstitched1, "unstitched forward reads")
	fs.StringVar(&c.Unstitched1, "u1", c.Unstitched1, "alias of --unstitched1")
	fs.StringVar(&c.Unstitched2, "unstitched2", c.Unstitched2, "unstitched reverse reads")
	fs.StringVar(&c.Unstitched2, "u2", c.Unstitched2, "alias of --unstitched2")
	fs.StringVar(&c.Log, "log", c.Log, "stitching log (TSV)")
	fs.StringVar(&c.Log, "l", c.Log, "alias of --log")
	fs.StringVar(&c.DovetailLog, "dovetail-log", c.DovetailLog, "dovetailed-read log (TSV)")
	fs.StringVar(&c.DovetailLog, "dl", c.DovetailLog, "alias of --dovetail-log")
	noHeader := !c.Header
	fs.BoolVar(&noHeader, "no-header", noHeader, "suppress log header lines")

	// Stitching
	fs.IntVar(&c.MinOverlap, "min-overlap", c.MinOverlap, "minimum overlap of the paired reads")
	fs.IntVar(&c.MinOverlap, "m", c.MinOverlap, "alias of --min-overlap")
	fs.Float64Var(&c.Mismatch, "mismatch", c.Mismatch, "mismatch fraction allowed in the overlap, in [0,1)")
	fs.Float64Var(&c.Mismatch, "p", c.Mismatch, "alias of --mismatch")
	fs.BoolVar(&c.Dovetail, "dovetail", c.Dovetail, "also search dovetailed alignments")
	fs.BoolVar(&c.Dovetail, "d", c.Dovetail, "alias of --dovetail")
	fs.BoolVar(&c.Shortest, "shortest", c.Shortest, "prefer the shortest stitched read on ties")
	fs.BoolVar(&c.Shortest, "n", c.Shortest, "alias of --shortest")

	// Performance
	fs.IntVar(&c.Threads, "threads", c.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&c.Threads, "t", c.Threads, "alias of --threads")
	fs.IntVar(&c.BatchSize, "batch-size", c.BatchSize, "read pairs per worker job")

	// Misc
	fs.StringVar(&c.Config, "config", c.Config, "TOML file with option defaults")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "print counts of stitching results")
	fs.BoolVar(&c.Verbose, "ve", c.Verbose, "alias of --verbose")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit")

	return &noHeader
}

// AfterParse finalizes header, takes R1 R2 from positionals when given, and
// runs shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		if c.Forward != "" || c.Reverse != "" {
			return errors.New("positional inputs conflict with --forward/--reverse")
		}
		if len(posArgs) != 2 {
			return fmt.Errorf("expected two positional inputs (R1 R2), got %d", len(posArgs))
		}
		c.Forward, c.Reverse = posArgs[0], posArgs[1]
	}
	return Validate(c)
}

// Validate applies the option invariants.
func Validate(c *Common) error {
	if c.Forward == "" || c.Reverse == "" {
		return errors.New("both --forward and --reverse FASTQ inputs are required")
	}
	if c.Forward == "-" && c.Reverse == "-" {
		return errors.New("only one input may be read from STDIN")
	}
	for _, p := range []struct{ flag, val string }{
		{"--unstitched1", c.Unstitched1},
		{"--unstitched2", c.Unstitched2},
		{"--log", c.Log},
		{"--dovetail-log", c.DovetailLog},
	} {
		if p.val == "-" {
			return fmt.Errorf("%s cannot write to STDOUT; only --output may", p.flag)
		}
	}
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.BatchSize < 1 {
		return errors.New("--batch-size must be ≥ 1")
	}
	p := c.Params()
	return p.Validate()
}

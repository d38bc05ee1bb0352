// internal/cli/options.go
package cli

import (
	"flag"
	"io"

	"pestitch/internal/clibase"
	"pestitch/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a FlagSet with ContinueOnError that prints nothing on
// its own; callers render usage explicitly.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags and returns an Options struct.
// Values from a --config file become flag defaults, so explicit flags win.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	opt.Common = clibase.Defaults()
	var help bool

	if path, ok := cliutil.PeekFlagValue(argv, "config"); ok && path != "" {
		fc, err := LoadConfig(path)
		if err != nil {
			return opt, err
		}
		fc.Apply(&opt.Common)
	}

	noHeader := clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message")
	clibase.UsageCommon(fs, fs.Name(), func(out io.Writer, _ func(string) string) {
		_, _ = io.WriteString(out, "Usage:\n  "+fs.Name()+" -1 R1.fq -2 R2.fq -o out.fq [options]\n  "+fs.Name()+" [options] R1.fq R2.fq\n")
	})

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	posArgs = append(posArgs, fs.Args()...)
	if err := clibase.AfterParse(&opt.Common, noHeader, posArgs); err != nil {
		return opt, err
	}
	return opt, nil
}

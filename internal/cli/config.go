package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"pestitch/internal/clibase"
)

// FileConfig mirrors the keys accepted in a --config TOML file. Unset keys
// keep the built-in defaults.
type FileConfig struct {
	MinOverlap *int     `toml:"min_overlap"`
	Mismatch   *float64 `toml:"mismatch"`
	Dovetail   *bool    `toml:"dovetail"`
	Shortest   *bool    `toml:"shortest"`
	Threads    *int     `toml:"threads"`
	BatchSize  *int     `toml:"batch_size"`
	NoHeader   *bool    `toml:"no_header"`
	Verbose    *bool    `toml:"verbose"`
}

// LoadConfig decodes a TOML config file. Unknown keys are an error.
func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fc, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fc, fmt.Errorf("config %s: unknown key %q", path, und[0].String())
	}
	return fc, nil
}

// Apply overlays the set keys onto c.
func (fc FileConfig) Apply(c *clibase.Common) {
	if fc.MinOverlap != nil {
		c.MinOverlap = *fc.MinOverlap
	}
	if fc.Mismatch != nil {
		c.Mismatch = *fc.Mismatch
	}
	if fc.Dovetail != nil {
		c.Dovetail = *fc.Dovetail
	}
	if fc.Shortest != nil {
		c.Shortest = *fc.Shortest
	}
	if fc.Threads != nil {
		c.Threads = *fc.Threads
	}
	if fc.BatchSize != nil {
		c.BatchSize = *fc.BatchSize
	}
	if fc.NoHeader != nil {
		c.Header = !*fc.NoHeader
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
}

// core/stitch/params.go
package stitch

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Params validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultMinOverlap = 20
	DefaultMismatch   = 0
)

// Params controls the overlap search.
type Params struct {
	MinOverlap     int     // minimum overlap, after discounting Ns
	Mismatch       float32 // allowed mismatch fraction of the overlap, in [0,1)
	Dovetail       bool    // also try offsets where the reverse read runs past the forward 5' end
	PreferShortest bool    // on equal scores keep the shorter stitched read
}

// DefaultParams returns the defaults used by the stitch command.
func DefaultParams() Params {
	return Params{MinOverlap: DefaultMinOverlap, Mismatch: DefaultMismatch}
}

// Validate reports ErrInvalidConfig for a non-positive overlap or a mismatch
// fraction outside [0,1).
func (p Params) Validate() error {
	if p.MinOverlap <= 0 {
		return fmt.Errorf("%w: overlap must be greater than 0 (got %d)", ErrInvalidConfig, p.MinOverlap)
	}
	if !(p.Mismatch >= 0 && p.Mismatch < 1) {
		return fmt.Errorf("%w: mismatch must be in [0,1) (got %g)", ErrInvalidConfig, p.Mismatch)
	}
	return nil
}

// internal/pipeline/sim.go
package pipeline

import (
	"pestitch-core/fastq"
	"pestitch-core/stitch"
)

// Stitcher is the minimal capability the pipeline needs.
// Any stitcher (including fakes in tests) can satisfy this.
// A Stitcher is used by a single worker at a time.
type Stitcher interface {
	Stitch(pair *fastq.Pair) (stitch.Result, error)
}

// Factory builds one Stitcher per worker.
type Factory func() (Stitcher, error)

// FromParams returns a Factory of core stitchers configured with p.
func FromParams(p stitch.Params) Factory {
	return func() (Stitcher, error) {
		s, err := stitch.New(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

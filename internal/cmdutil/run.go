package cmdutil

import (
	"context"

	"github.com/jgbaldwinbrown/iter"

	"pestitch-core/fastq"
	"pestitch-core/stitch"
	"pestitch/internal/pipeline"
)

// RunStream runs the shared pipeline, lets observe inspect each result in
// input order, and streams results via send.
// It returns the number of pairs processed and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	src iter.Iter[fastq.Pair],
	newStitcher pipeline.Factory,
	observe func(*stitch.Result),
	send func(stitch.Result) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachResult(ctx, cfg, src, newStitcher, func(r *stitch.Result) error {
		if observe != nil {
			observe(r)
		}
		if err := send(*r); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}

// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"github.com/jgbaldwinbrown/iter"
	"golang.org/x/sync/errgroup"

	"pestitch-core/fastq"
	"pestitch-core/stitch"
)

// DefaultBatchSize is the number of pairs handed to a worker at once.
const DefaultBatchSize = 256

// Config controls the stitching pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1); 1 runs sequentially
	BatchSize int // pairs per job; <1 uses DefaultBatchSize
}

type batch struct {
	seq   int
	pairs []fastq.Pair
	err   error // input error found right after the last pair
}

type done struct {
	seq     int
	results []stitch.Result
	err     error
}

// ForEachResult stitches every pair from src and calls visit for each
// result in input order. It stops at the first error, whether from the
// input, a stitcher, visit, or ctx. Errors are reported at their input
// position, so visit sees exactly the results a sequential run would have
// produced before failing.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	src iter.Iter[fastq.Pair],
	newStitcher Factory,
	visit func(*stitch.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Threads == 1 {
		return sequential(ctx, src, newStitcher, visit)
	}

	stitchers := make([]Stitcher, cfg.Threads)
	for i := range stitchers {
		st, err := newStitcher()
		if err != nil {
			return err
		}
		stitchers[i] = st
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan batch, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Feeder
	g.Go(func() error {
		defer close(jobs)
		n := 0
		cur := make([]fastq.Pair, 0, cfg.BatchSize)
		send := func(b batch) error {
			select {
			case jobs <- b:
				n++
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		err := src.Iterate(func(p fastq.Pair) error {
			cur = append(cur, p)
			if len(cur) < cfg.BatchSize {
				return nil
			}
			b := batch{seq: n, pairs: cur}
			cur = make([]fastq.Pair, 0, cfg.BatchSize)
			return send(b)
		})
		if gctx.Err() != nil {
			return gctx.Err()
		}
		if len(cur) > 0 || err != nil {
			return send(batch{seq: n, pairs: cur, err: err})
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	for _, st := range stitchers {
		st := st
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for b := range jobs {
				d := done{seq: b.seq, results: make([]stitch.Result, 0, len(b.pairs)), err: b.err}
				for i := range b.pairs {
					r, err := st.Stitch(&b.pairs[i])
					if err != nil {
						d.err = err
						break
					}
					d.results = append(d.results, r)
				}
				select {
				case results <- d:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: runs on the caller's goroutine so visit needs no locking.
	var cerr error
	pending := make(map[int]done)
	next := 0
collect:
	for d := range results {
		pending[d.seq] = d
		for {
			d, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			for i := range d.results {
				if err := visit(&d.results[i]); err != nil {
					cerr = err
					break collect
				}
			}
			if d.err != nil {
				cerr = d.err
				break collect
			}
		}
	}
	if cerr != nil {
		cancel()
		for range results {
		}
		_ = g.Wait()
		return cerr
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func sequential(ctx context.Context, src iter.Iter[fastq.Pair], newStitcher Factory, visit func(*stitch.Result) error) error {
	st, err := newStitcher()
	if err != nil {
		return err
	}
	return src.Iterate(func(p fastq.Pair) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := st.Stitch(&p)
		if err != nil {
			return err
		}
		return visit(&r)
	})
}

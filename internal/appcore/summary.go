package appcore

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"pestitch-core/stitch"
)

// Summary tallies stitching outcomes. It is fed from the pipeline's
// collector, so it needs no locking.
type Summary struct {
	Analyzed   int
	Stitched   int
	Failed     int
	Dovetailed int

	detail   bool
	lengths  stats.Float64Data
	overlaps stats.Float64Data
}

// NewSummary returns a Summary. With detail set it also keeps stitched
// and overlap lengths for the length statistics.
func NewSummary(detail bool) *Summary {
	return &Summary{detail: detail}
}

// Observe records one result.
func (s *Summary) Observe(r *stitch.Result) {
	s.Analyzed++
	if !r.Found {
		s.Failed++
		return
	}
	s.Stitched++
	if r.Dovetailed() {
		s.Dovetailed++
	}
	if s.detail {
		s.lengths = append(s.lengths, float64(len(r.Stitched.Seq)))
		s.overlaps = append(s.overlaps, float64(r.OverlapLen))
	}
}

// LengthStats returns the mean and median stitched length and the mean
// overlap. All are zero when nothing was stitched or detail is off.
func (s *Summary) LengthStats() (meanLen, medianLen, meanOverlap float64) {
	if len(s.lengths) == 0 {
		return 0, 0, 0
	}
	meanLen, _ = stats.Mean(s.lengths)
	medianLen, _ = stats.Median(s.lengths)
	meanOverlap, _ = stats.Mean(s.overlaps)
	return meanLen, medianLen, meanOverlap
}

// Write prints the counts, followed by length statistics when any pair
// was stitched.
func (s *Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Reads analyzed: %d\n  Successfully stitched: %d\n  Stitch failures: %d\n",
		s.Analyzed, s.Stitched, s.Failed); err != nil {
		return err
	}
	if s.Dovetailed > 0 {
		if _, err := fmt.Fprintf(w, "  Dovetailed: %d\n", s.Dovetailed); err != nil {
			return err
		}
	}
	if len(s.lengths) == 0 {
		return nil
	}
	meanLen, medianLen, meanOverlap := s.LengthStats()
	_, err := fmt.Fprintf(w, "  Stitched length (mean/median): %.1f/%.1f\n  Mean overlap: %.1f\n",
		meanLen, medianLen, meanOverlap)
	return err
}

package output

import "strconv"

// Header rows for the tab-delimited logs.
const (
	LogHeader      = "Read\tOverlapLen\tStitchedLen\tMismatch"
	DovetailHeader = "Read\tDovetailFwd\tDovetailRev"
)

// Missing fills an empty dovetail column.
const Missing = "-"

// FormatScore renders a mismatch fraction: "0" when exact, otherwise three
// decimals.
func FormatScore(s float32) string {
	if s == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(s), 'f', 3, 64)
}

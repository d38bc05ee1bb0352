package seq

import "fmt"

// Orientation says how a read is transformed before comparison.
type Orientation int

const (
	Unchanged Orientation = iota
	Reversed
	ReverseComplemented
)

func (o Orientation) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Reversed:
		return "reversed"
	case ReverseComplemented:
		return "reverse-complemented"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Orient appends s to dst transformed according to o.
func Orient(dst, s []byte, o Orientation) ([]byte, error) {
	switch o {
	case Unchanged:
		return append(dst, s...), nil
	case Reversed:
		return AppendReverse(dst, s), nil
	case ReverseComplemented:
		return AppendRevComp(dst, s)
	}
	return dst, fmt.Errorf("invalid orientation %d", int(o))
}

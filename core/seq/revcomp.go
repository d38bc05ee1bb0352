// core/seq/revcomp.go
package seq

import "fmt"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['N'] = 'N'
}

// UnknownBaseError reports a symbol that has no Watson-Crick complement.
type UnknownBaseError struct {
	Base byte
	Pos  int
}

func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("unknown nucleotide %q at position %d", e.Base, e.Pos+1)
}

// Complement returns the complement of b. Only A, C, G, T and N are recognized.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// RevComp returns the reverse-complement of s as a new slice.
func RevComp(s []byte) ([]byte, error) {
	return AppendRevComp(nil, s)
}

// AppendRevComp appends the reverse-complement of s to dst.
func AppendRevComp(dst, s []byte) ([]byte, error) {
	n := len(s)
	for i := n - 1; i >= 0; i-- {
		c := complement[s[i]]
		if c == 0 {
			return dst, &UnknownBaseError{Base: s[i], Pos: i}
		}
		dst = append(dst, c)
	}
	return dst, nil
}

// AppendReverse appends s in reverse order to dst.
func AppendReverse(dst, s []byte) []byte {
	for i := len(s) - 1; i >= 0; i-- {
		dst = append(dst, s[i])
	}
	return dst
}

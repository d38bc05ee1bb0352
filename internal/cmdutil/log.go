// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a WARN line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof writes an INFO line to dst.
func Infof(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Errorf writes a fatal error line.
func Errorf(dst io.Writer, err error) {
	_, _ = fmt.Fprintf(dst, "Error! %v\n", err)
}

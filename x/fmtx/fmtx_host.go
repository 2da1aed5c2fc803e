//go:build !tremo

package fmtx

import (
	"fmt"
	"io"
	"os"
)

// DefaultOutput is used by Printf on host builds.
var DefaultOutput io.Writer = os.Stdout

func Sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return fmt.Fprintf(w, format, a...)
}

func Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(DefaultOutput, format, a...)
}

package exporter

import (
	"fmt"
	"io"
)

// errWriter stops writing after the first failure and keeps that error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprint(ew.w, a...)
	}
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, a...)
	}
}

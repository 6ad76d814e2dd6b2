package main

import (
	"fmt"
	"io"
	"os"
)

func outWriter(s *Session) io.Writer {
	if s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func outPrint(s *Session, a ...any) {
	_, _ = fmt.Fprint(outWriter(s), a...)
}

func outPrintln(s *Session, a ...any) {
	_, _ = fmt.Fprintln(outWriter(s), a...)
}

package xdxf

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// WriteAll writes every fragment of seq to w, each followed by a newline,
// and stops at the first error. Fragments written before the error are
// flushed.
func WriteAll(w io.Writer, seq iter.Seq2[string, error]) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("writing output: %w", flushErr)
		}
	}()

	for fragment, seqErr := range seq {
		if seqErr != nil {
			return seqErr
		}
		if _, writeErr := bw.WriteString(fragment + "\n"); writeErr != nil {
			return fmt.Errorf("writing output: %w", writeErr)
		}
	}
	return nil
}

package services

import (
	"iter"
	"sync/atomic"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

// singleUse wraps seq so that only the first iteration runs it. Later
// iterations yield domain.ErrSequenceConsumed.
func singleUse(seq iter.Seq2[string, error]) iter.Seq2[string, error] {
	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if used.Swap(true) {
			yield("", domain.ErrSequenceConsumed)
			return
		}
		seq(yield)
	}
}

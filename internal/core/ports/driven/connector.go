package driven

import (
	"context"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

// Connector fetches a whole document from a source.
type Connector interface {
	// Type returns the connector type identifier (e.g., "filesystem").
	Type() string

	// Fetch reads the document at uri.
	// Failures wrap domain.ErrFetchFailed.
	Fetch(ctx context.Context, uri string) (*domain.RawDocument, error)
}

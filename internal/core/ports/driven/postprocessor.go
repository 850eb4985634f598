package driven

import (
	"context"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

// PostProcessor is one annotation stage of a glossary entry.
// PostProcessors are chained in a pipeline (pluralize, cross-reference, examples).
type PostProcessor interface {
	// Name returns the processor name for logging.
	Name() string

	// Process updates entry in place. terms is the document-wide term index,
	// longest first; processors that need it must not mutate it.
	Process(ctx context.Context, entry *domain.Entry, terms []string) error
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the entry through all processors in order.
	Process(ctx context.Context, entry *domain.Entry, terms []string) error
}

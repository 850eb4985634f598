// Package postprocessors chains the annotation stages applied to every
// glossary entry.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.PostProcessorPipeline = (*Pipeline)(nil)

// Pipeline chains multiple PostProcessors and runs them in order.
type Pipeline struct {
	processors []driven.PostProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.PostProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the entry through all processors in order. Each processor
// sees the changes of the ones before it.
func (p *Pipeline) Process(ctx context.Context, entry *domain.Entry, terms []string) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", domain.ErrInvalidInput)
	}

	for _, processor := range p.processors {
		if err := processor.Process(ctx, entry, terms); err != nil {
			return fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}
	return nil
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.processors))
	for _, processor := range p.processors {
		names = append(names, processor.Name())
	}
	return names
}

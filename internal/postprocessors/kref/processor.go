package kref

import (
	"context"
	"slices"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor marks cross-references in an entry definition.
// An entry never references one of its own keys.
type Processor struct{}

// New creates a new cross-reference processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "kref"
}

// Process annotates the definition with every term of the index that is
// not one of the entry keys. Keys must already be pluralized.
func (p *Processor) Process(_ context.Context, entry *domain.Entry, terms []string) error {
	others := make([]string, 0, len(terms))
	for _, term := range terms {
		if !slices.Contains(entry.Keys, term) {
			others = append(others, term)
		}
	}
	entry.Definition = MarkTerms(entry.Definition, others)
	return nil
}

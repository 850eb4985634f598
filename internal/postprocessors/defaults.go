package postprocessors

import (
	"github.com/custodia-labs/xdxfgen/internal/postprocessors/examples"
	"github.com/custodia-labs/xdxfgen/internal/postprocessors/kref"
	"github.com/custodia-labs/xdxfgen/internal/postprocessors/plural"
)

// NewDefaultPipeline returns the glossary stages in their required order:
// keys are pluralized before cross-references are marked, so an entry
// never references its own plural, and examples are marked last.
func NewDefaultPipeline(pluralizable []string) *Pipeline {
	return NewPipeline(
		plural.New(pluralizable),
		kref.New(),
		examples.New(),
	)
}

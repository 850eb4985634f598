package driving

import (
	"context"
	"iter"
)

// GlossaryService converts a Word-exported 3-column table into articles.
type GlossaryService interface {
	// Convert returns the markup fragments for the document at source.
	// The sequence is lazy and single-use; an error ends it.
	Convert(ctx context.Context, source string) iter.Seq2[string, error]
}

// AirportService converts Wikipedia airport-code list pages into articles.
type AirportService interface {
	// Convert returns the category article followed by the fragments of
	// every page, one page per letter, in order.
	// The sequence is lazy and single-use; an error ends it.
	Convert(ctx context.Context, letters string) iter.Seq2[string, error]
}

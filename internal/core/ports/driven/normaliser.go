package driven

import (
	"context"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

// GlossaryNormaliser turns a Word-exported HTML document into glossary rows.
type GlossaryNormaliser interface {
	// GlossaryRows returns the data rows of the document's table, in order,
	// with header rows skipped and every cell normalised.
	GlossaryRows(ctx context.Context, raw *domain.RawDocument) ([]domain.GlossaryRow, error)
}

// AirportNormaliser turns a Wikipedia airport list page into rows.
type AirportNormaliser interface {
	// AirportPage validates the table header and returns the page rows.
	AirportPage(ctx context.Context, raw *domain.RawDocument) (*domain.AirportPage, error)
}

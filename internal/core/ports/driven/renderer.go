package driven

import "github.com/custodia-labs/xdxfgen/internal/core/domain"

// ArticleRenderer formats dictionary articles as markup fragments.
// A fragment carries no trailing newline.
type ArticleRenderer interface {
	// Glossary renders one glossary entry.
	Glossary(entry domain.Entry) string

	// Category renders the article every airport article refers to.
	Category() string

	// SourceComment names the page the following airport articles came from.
	SourceComment(page *domain.AirportPage) string

	// Airport renders one airport row of page.
	Airport(page *domain.AirportPage, row domain.AirportRow) string
}

package domain

// GlossaryRow is one data row of a Word-exported 3-column table:
//
//	| Phrase | Abbr | Definition |
//
// Every field is already normalised text.
type GlossaryRow struct {
	Phrase     string
	Abbr       string
	Definition string
}

// Entry is a dictionary article built from a glossary row.
// Keys are ordered longest first and include generated plurals.
type Entry struct {
	Keys       []string
	Definition string
}

// Package html extracts table rows from HTML documents.
//
// Two layouts are understood: the single 3-column table of a Word-exported
// glossary (Phrase, Abbr, Definition) and the airport table of a Wikipedia
// "List of airports by IATA airport code" page. Documents are decoded to
// UTF-8 from the charset they declare before parsing.
package html

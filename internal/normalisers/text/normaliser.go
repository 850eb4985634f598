package text

import (
	"strings"
	"unicode"
)

// escaper runs in a single pass, so an "&amp;" already present in the
// input is escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"’", "'",
)

// Normalise collapses every whitespace run (newlines and non-breaking
// spaces included) into one space, trims both ends, escapes "&" and
// replaces the typographic apostrophe with a plain one.
func Normalise(raw string) string {
	return escaper.Replace(strings.Join(strings.Fields(raw), " "))
}

// TrimCell prepares a Wikipedia table cell: trailing whitespace is removed,
// non-breaking spaces become plain spaces and "&" is escaped. Inner
// whitespace is left as is.
func TrimCell(raw string) string {
	s := strings.TrimRightFunc(raw, unicode.IsSpace)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.ReplaceAll(s, "&", "&amp;")
}

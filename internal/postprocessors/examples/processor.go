// Package examples marks "Example:" sentences of a definition as
// <ex type="exm"> blocks.
package examples

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// exampleSentence matches "Example:" or "Examples:", one whitespace
// character and everything up to the next period. A sentence holding an
// inner period is cut at that period.
var exampleSentence = regexp.MustCompile(`(Examples?):\s([^.]+)\.`)

// MarkExamples wraps every example sentence of text. The keyword must start
// a word: a letter, number or underscore of any script right before it
// rules the match out.
func MarkExamples(text string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(text) {
		loc := exampleSentence.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			loc[i] += pos
		}
		if prev, _ := utf8.DecodeLastRuneInString(text[:loc[0]]); isWordRune(prev) {
			pos = loc[0] + 1
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(`<ex type="exm"><ex_orig>`)
		b.WriteString(text[loc[2]:loc[3]])
		b.WriteString(": ")
		b.WriteString(text[loc[4]:loc[5]])
		b.WriteString(`.</ex_orig></ex>`)
		last, pos = loc[1], loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Processor marks example sentences in an entry definition.
type Processor struct{}

// New creates a new example processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "examples"
}

// Process rewrites the entry definition.
func (p *Processor) Process(_ context.Context, entry *domain.Entry, _ []string) error {
	entry.Definition = MarkExamples(entry.Definition)
	return nil
}

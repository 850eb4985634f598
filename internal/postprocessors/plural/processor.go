// Package plural adds plural keys to glossary entries whose last word is a
// countable noun from a closed list.
package plural

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor expands entry keys into singular and plural forms.
// The word set is fixed at construction and never mutated.
type Processor struct {
	words map[string]struct{}
}

// New creates a pluralizer for the given nouns. Words are compared
// lowercased.
func New(words []string) *Processor {
	p := &Processor{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		p.words[lower(w)] = struct{}{}
	}
	return p
}

// lower uses a fresh Caser per call: a Caser keeps state between calls.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "plural"
}

// IsPluralizable reports whether the last space-separated word of phrase,
// lowercased, is in the set.
func (p *Processor) IsPluralizable(phrase string) bool {
	words := strings.Split(phrase, " ")
	_, ok := p.words[lower(words[len(words)-1])]
	return ok
}

// Pluralize returns phrases with every pluralizable phrase immediately
// followed by phrase+"s". Order is kept and nothing is deduplicated.
func (p *Processor) Pluralize(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		out = append(out, phrase)
		if p.IsPluralizable(phrase) {
			out = append(out, phrase+"s")
		}
	}
	return out
}

// Process replaces the entry keys with their pluralized form.
func (p *Processor) Process(_ context.Context, entry *domain.Entry, _ []string) error {
	entry.Keys = p.Pluralize(entry.Keys)
	return nil
}

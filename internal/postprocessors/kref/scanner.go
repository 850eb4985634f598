// Package kref marks mentions of known glossary terms inside definitions
// as <kref> cross-references.
package kref

import (
	"slices"
	"strings"

	"github.com/custodia-labs/xdxfgen/internal/logger"
)

const (
	openTag  = "<kref>"
	closeTag = "</kref>"
)

// isLeading reports whether b may precede a term.
func isLeading(b byte) bool {
	return b == ' ' || b == '.' || b == '('
}

// isTrailing reports whether b may follow a term or its plural "s".
func isTrailing(b byte) bool {
	return b == ' ' || b == '.' || b == ')'
}

func wrap(term string) string {
	return openTag + term + closeTag
}

// MarkTerms wraps whole-word occurrences of terms in text.
//
// Terms are tried in descending byte order. For each term four passes run
// against the current text, in order:
//
//  1. boundary, term, optional "s", boundary: every non-overlapping match
//  2. start of text, term, optional "s", boundary: once
//  3. boundary, term, optional "s", end of text: once
//  4. the whole text is the term, optionally followed by "s"
//
// Leading boundaries are ' ', '.', '('; trailing ones are ' ', '.', ')'.
// The plural "s" and the boundaries stay outside the tag. Terms match
// literally and empty terms are ignored.
func MarkTerms(text string, terms []string) string {
	ordered := slices.Clone(terms)
	slices.Sort(ordered)
	slices.Reverse(ordered)

	for _, term := range ordered {
		if term == "" {
			continue
		}
		text = markInner(text, term)
		text = markLeading(text, term)
		text = markTrailing(text, term)
		text = markWhole(text, term)
	}
	logger.Debug("%s", text)
	return text
}

// closeAt returns the index just past an optional "s" and the trailing
// boundary that must start at i. The "s" form is tried first.
func closeAt(text string, i int) (int, bool) {
	if i+1 < len(text) && text[i] == 's' && isTrailing(text[i+1]) {
		return i + 2, true
	}
	if i < len(text) && isTrailing(text[i]) {
		return i + 1, true
	}
	return 0, false
}

// markInner scans left to right and resumes after the trailing boundary
// of each match, so a boundary is never shared by two matches.
func markInner(text, term string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(text); {
		if isLeading(text[i]) && strings.HasPrefix(text[i+1:], term) {
			start := i + 1
			stop := start + len(term)
			if end, ok := closeAt(text, stop); ok {
				b.WriteString(text[last:start])
				b.WriteString(wrap(term))
				b.WriteString(text[stop:end])
				last, i = end, end
				continue
			}
		}
		i++
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func markLeading(text, term string) string {
	if !strings.HasPrefix(text, term) {
		return text
	}
	if _, ok := closeAt(text, len(term)); !ok {
		return text
	}
	return wrap(term) + text[len(term):]
}

func markTrailing(text, term string) string {
	n := len(text) - len(term)
	if i := n - 2; i >= 0 && isLeading(text[i]) && text[i+1:len(text)-1] == term && text[len(text)-1] == 's' {
		return text[:i+1] + wrap(term) + "s"
	}
	if i := n - 1; i >= 0 && isLeading(text[i]) && text[i+1:] == term {
		return text[:i+1] + wrap(term)
	}
	return text
}

func markWhole(text, term string) string {
	switch text {
	case term:
		return wrap(term)
	case term + "s":
		return wrap(term) + "s"
	}
	return text
}

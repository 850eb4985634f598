package services

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driving"
	"github.com/custodia-labs/xdxfgen/internal/logger"
)

// Ensure GlossaryService implements the interface.
var _ driving.GlossaryService = (*GlossaryService)(nil)

const keyJoiner = "\n"

// GlossaryService converts a Word-exported 3-column table into articles.
type GlossaryService struct {
	connector  driven.Connector
	normaliser driven.GlossaryNormaliser
	pipeline   driven.PostProcessorPipeline
	renderer   driven.ArticleRenderer
}

// NewGlossaryService creates a new glossary service.
func NewGlossaryService(
	connector driven.Connector,
	normaliser driven.GlossaryNormaliser,
	pipeline driven.PostProcessorPipeline,
	renderer driven.ArticleRenderer,
) *GlossaryService {
	return &GlossaryService{
		connector:  connector,
		normaliser: normaliser,
		pipeline:   pipeline,
		renderer:   renderer,
	}
}

// Convert returns one article per distinct key set of the document at
// source, ordered by key set. Nothing is read until the sequence is
// iterated.
func (s *GlossaryService) Convert(ctx context.Context, source string) iter.Seq2[string, error] {
	return singleUse(func(yield func(string, error) bool) {
		raw, err := s.connector.Fetch(ctx, source)
		if err != nil {
			yield("", fmt.Errorf("read glossary: %w", err))
			return
		}

		rows, err := s.normaliser.GlossaryRows(ctx, raw)
		if err != nil {
			yield("", fmt.Errorf("parse glossary %s: %w", raw.URI, err))
			return
		}
		logger.Debug("glossary %s: %d rows", raw.URI, len(rows))

		entries := collectEntries(rows)
		terms := termIndex(entries)
		logger.Debug("glossary %s: %d entries, %d terms", raw.URI, len(entries), len(terms))

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			if err := s.pipeline.Process(ctx, &entry, terms); err != nil {
				yield("", fmt.Errorf("annotate %q: %w", entry.Keys, err))
				return
			}
			if !yield(s.renderer.Glossary(entry), nil) {
				return
			}
		}
	})
}

// collectEntries groups rows by key set, regardless of key order. A later
// row with the same key set replaces the definition of the earlier one and
// keeps its keys and position. Entries are returned ordered
// by their newline-joined keys with keys longest first.
func collectEntries(rows []domain.GlossaryRow) []domain.Entry {
	byKey := make(map[string]int, len(rows))
	var entries []domain.Entry

	for _, row := range rows {
		keys := rowKeys(row)
		if len(keys) == 0 {
			logger.Warn("skipping row without phrase or abbreviation: %q", row.Definition)
			continue
		}
		joined := keySetID(keys)
		if i, ok := byKey[joined]; ok {
			entries[i].Definition = row.Definition
			continue
		}
		byKey[joined] = len(entries)
		entries = append(entries, domain.Entry{Keys: keys, Definition: row.Definition})
	}

	slices.SortFunc(entries, func(a, b domain.Entry) int {
		return strings.Compare(strings.Join(a.Keys, keyJoiner), strings.Join(b.Keys, keyJoiner))
	})
	for i := range entries {
		slices.SortStableFunc(entries[i].Keys, byRuneLengthDesc)
	}
	return entries
}

// keySetID identifies a key set independently of the key order.
func keySetID(keys []string) string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	return strings.Join(sorted, keyJoiner)
}

// rowKeys splits the phrase and abbreviation on "/" and returns the
// distinct trimmed parts in order of appearance. Cross-reference tags
// already present in the phrase are dropped.
func rowKeys(row domain.GlossaryRow) []string {
	phrase := strings.NewReplacer("<kref>", "", "</kref>", "").Replace(row.Phrase)

	var keys []string
	for _, cell := range []string{phrase, row.Abbr} {
		for _, part := range strings.Split(cell, "/") {
			part = strings.TrimSpace(part)
			if part != "" && !slices.Contains(keys, part) {
				keys = append(keys, part)
			}
		}
	}
	return keys
}

// termIndex returns every key longer than one character, without
// duplicates, longest first.
func termIndex(entries []domain.Entry) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		for _, key := range entry.Keys {
			if utf8.RuneCountInString(key) <= 1 {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			terms = append(terms, key)
		}
	}
	slices.SortFunc(terms, func(a, b string) int {
		return cmp.Or(byRuneLengthDesc(a, b), strings.Compare(a, b))
	})
	return terms
}

func byRuneLengthDesc(a, b string) int {
	return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
}

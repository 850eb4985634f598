package services

import (
	"context"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driving"
	"github.com/custodia-labs/xdxfgen/internal/logger"
)

// Ensure AirportService implements the interface.
var _ driving.AirportService = (*AirportService)(nil)

// AirportService converts Wikipedia airport-code list pages into articles.
type AirportService struct {
	connector  driven.Connector
	normaliser driven.AirportNormaliser
	renderer   driven.ArticleRenderer
	settings   domain.WikipediaSettings
}

// NewAirportService creates a new airport service. Page URLs come from
// the settings URL template.
func NewAirportService(
	connector driven.Connector,
	normaliser driven.AirportNormaliser,
	renderer driven.ArticleRenderer,
	settings domain.WikipediaSettings,
) *AirportService {
	return &AirportService{
		connector:  connector,
		normaliser: normaliser,
		renderer:   renderer,
		settings:   settings,
	}
}

// Convert yields the category article, then for every letter the source
// comment of its page followed by one article per airport. Pages are
// fetched one at a time as the sequence advances. An empty letters string
// uses the configured letters.
func (s *AirportService) Convert(ctx context.Context, letters string) iter.Seq2[string, error] {
	if letters == "" {
		letters = s.settings.Letters
	}

	return singleUse(func(yield func(string, error) bool) {
		if !yield(s.renderer.Category(), nil) {
			return
		}

		total := utf8.RuneCountInString(letters)
		defer logger.EndProgress()

		n := 0
		for _, letter := range letters {
			n++
			url := s.settings.PageURL(letter)
			logger.Progress("page %c (%d/%d)", letter, n, total)

			page, err := s.page(ctx, url)
			if err != nil {
				yield("", err)
				return
			}
			logger.Debug("%s: %d airports", url, len(page.Rows))

			if !yield(s.renderer.SourceComment(page), nil) {
				return
			}
			for _, row := range page.Rows {
				if !yield(s.renderer.Airport(page, row), nil) {
					return
				}
			}
		}
	})
}

func (s *AirportService) page(ctx context.Context, url string) (*domain.AirportPage, error) {
	raw, err := s.connector.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	page, err := s.normaliser.AirportPage(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return page, nil
}

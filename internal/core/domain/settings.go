package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// User-Agent parts following the Wikimedia User-Agent policy:
// <client name>/<version> (<contact information>) <library/framework name>/<version>
const (
	userAgentName    = "xdxfgen"
	userAgentContact = "https://github.com/custodia-labs/xdxfgen"
	userAgentLibrary = "Go-HTTP-Client"
)

// DefaultWikipediaURLTemplate is the airport list page for one letter.
const DefaultWikipediaURLTemplate = "https://en.wikipedia.org/wiki/List_of_airports_by_IATA_airport_code:_%s"

// DefaultWikipediaLetters covers A to Y; there is no Z page.
const DefaultWikipediaLetters = "ABCDEFGHIJKLMNOPQRSTUVWXY"

// DefaultGlossaryInput is the glossary file read when no path is given.
const DefaultGlossaryInput = "xx.html"

// defaultPluralizable is the closed set of nouns that get an automatic plural
// key. "airportdestination" is kept as it always was: the source list glued
// "airport" and "destination" together.
var defaultPluralizable = []string{
	"seat", "transfer", "type", "number", "code", "subtype",
	"flight", "bag", "channel", "version", "message", "tier", "airportdestination",
	"printer", "group", "pool", "record", "point", "service",
	"fare", "list", "tracking", "load", "boarding", "ticket", "cabin",
	"coupon", "sheet", "deck", "traveler", "sale", "reader", "agent",
	"agreement", "quota", "leg", "link", "administrator", "market", "airline",
	"segment", "aircraft", "airport", "manifest", "passenger", "element",
	"reason", "reservation", "map", "preference", "keyword",
	"request", "station", "sublink", "terminal", "carrier",
}

// DefaultPluralizableWords returns a copy of the built-in pluralizable nouns.
func DefaultPluralizableWords() []string {
	out := make([]string, len(defaultPluralizable))
	copy(out, defaultPluralizable)
	return out
}

// BuildUserAgent constructs a user-agent string that complies with the
// Wikimedia robot policy.
func BuildUserAgent(appVersion string) string {
	if appVersion == "" {
		appVersion = "unknown"
	}
	return fmt.Sprintf("%s/%s (%s) %s/%s",
		userAgentName, appVersion, userAgentContact, userAgentLibrary, runtime.Version())
}

// GlossarySettings configures the 3-column table conversion.
type GlossarySettings struct {
	// Input is the HTML file read when no path argument is given.
	Input string

	// Pluralizable lists the nouns whose phrases get a plural key.
	Pluralizable []string
}

// WikipediaSettings configures the airport-code conversion.
type WikipediaSettings struct {
	// URLTemplate has a single %s replaced by the page letter.
	URLTemplate string

	// Letters lists the pages to fetch, in order.
	Letters string

	// RequestsPerSecond limits page fetches.
	RequestsPerSecond int

	// TimeoutSeconds bounds a single page fetch.
	TimeoutSeconds int

	// UserAgent is sent with every request.
	UserAgent string
}

// AppSettings holds the effective configuration.
type AppSettings struct {
	Glossary  GlossarySettings
	Wikipedia WikipediaSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Glossary: GlossarySettings{
			Input:        DefaultGlossaryInput,
			Pluralizable: DefaultPluralizableWords(),
		},
		Wikipedia: WikipediaSettings{
			URLTemplate:       DefaultWikipediaURLTemplate,
			Letters:           DefaultWikipediaLetters,
			RequestsPerSecond: 1,
			TimeoutSeconds:    30,
			UserAgent:         BuildUserAgent(""),
		},
	}
}

// Validate checks the settings for values that cannot work.
func (s *AppSettings) Validate() error {
	if strings.TrimSpace(s.Glossary.Input) == "" {
		return fmt.Errorf("%w: glossary input is empty", ErrInvalidInput)
	}
	if strings.Count(s.Wikipedia.URLTemplate, "%s") != 1 {
		return fmt.Errorf("%w: url template must contain exactly one %%s: %q", ErrInvalidInput, s.Wikipedia.URLTemplate)
	}
	if s.Wikipedia.Letters == "" {
		return fmt.Errorf("%w: no letters configured", ErrInvalidInput)
	}
	for _, r := range s.Wikipedia.Letters {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: letter %q is not in A-Z", ErrInvalidInput, r)
		}
	}
	if s.Wikipedia.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", ErrInvalidInput)
	}
	if s.Wikipedia.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidInput)
	}
	return nil
}

// PageURL returns the airport list URL for one letter.
func (w WikipediaSettings) PageURL(letter rune) string {
	return fmt.Sprintf(w.URLTemplate, string(letter))
}

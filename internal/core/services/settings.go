package services

import (
	"fmt"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyGlossaryInput        = "glossary.input"
	keyGlossaryPluralizable = "glossary.pluralizable"
	keyWikiURLTemplate      = "wikipedia.url_template"
	keyWikiLetters          = "wikipedia.letters"
	keyWikiRequestsPerSec   = "wikipedia.requests_per_second"
	keyWikiTimeoutSeconds   = "wikipedia.timeout_seconds"
	keyWikiUserAgent        = "wikipedia.user_agent"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	appVersion  string
}

// NewSettingsService creates a new settings service. appVersion goes into
// the default User-Agent.
func NewSettingsService(configStore driven.ConfigStore, appVersion string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		appVersion:  appVersion,
	}
}

// Get retrieves current application settings. Missing keys take their
// default value.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := s.GetDefaults()

	settings := &domain.AppSettings{
		Glossary: domain.GlossarySettings{
			Input:        s.getString(keyGlossaryInput, defaults.Glossary.Input),
			Pluralizable: s.getStringSlice(keyGlossaryPluralizable, defaults.Glossary.Pluralizable),
		},
		Wikipedia: domain.WikipediaSettings{
			URLTemplate:       s.getString(keyWikiURLTemplate, defaults.Wikipedia.URLTemplate),
			Letters:           s.getString(keyWikiLetters, defaults.Wikipedia.Letters),
			RequestsPerSecond: s.getInt(keyWikiRequestsPerSec, defaults.Wikipedia.RequestsPerSecond),
			TimeoutSeconds:    s.getInt(keyWikiTimeoutSeconds, defaults.Wikipedia.TimeoutSeconds),
			UserAgent:         s.getString(keyWikiUserAgent, defaults.Wikipedia.UserAgent),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyGlossaryInput, settings.Glossary.Input},
		{keyGlossaryPluralizable, settings.Glossary.Pluralizable},
		{keyWikiURLTemplate, settings.Wikipedia.URLTemplate},
		{keyWikiLetters, settings.Wikipedia.Letters},
		{keyWikiRequestsPerSec, settings.Wikipedia.RequestsPerSecond},
		{keyWikiTimeoutSeconds, settings.Wikipedia.TimeoutSeconds},
		{keyWikiUserAgent, settings.Wikipedia.UserAgent},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	defaults := domain.DefaultAppSettings()
	defaults.Wikipedia.UserAgent = domain.BuildUserAgent(s.appVersion)
	return defaults
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

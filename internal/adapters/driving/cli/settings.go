package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View the effective settings or write the defaults to the config file.

Settings are read from config.toml in the config directory. Missing keys
take their default value.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to the config file",
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Glossary]")
	cmd.Printf("  Input: %s\n", settings.Glossary.Input)
	cmd.Printf("  Pluralizable: %d words\n", len(settings.Glossary.Pluralizable))
	for _, line := range wrapWords(settings.Glossary.Pluralizable, 60) {
		cmd.Printf("    %s\n", line)
	}
	cmd.Println()

	cmd.Println("[Wikipedia]")
	cmd.Printf("  URL template: %s\n", settings.Wikipedia.URLTemplate)
	cmd.Printf("  Letters: %s\n", settings.Wikipedia.Letters)
	cmd.Printf("  Requests per second: %d\n", settings.Wikipedia.RequestsPerSecond)
	cmd.Printf("  Timeout: %ds\n", settings.Wikipedia.TimeoutSeconds)
	cmd.Printf("  User agent: %s\n", settings.Wikipedia.UserAgent)
	cmd.Println()

	status := "valid"
	if err := settings.Validate(); err != nil {
		status = err.Error()
	}
	cmd.Printf("Status: %s\n", status)
	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Default settings written.")
	return nil
}

// wrapWords joins words with ", " into lines no longer than width where
// possible.
func wrapWords(words []string, width int) []string {
	var lines []string
	var line strings.Builder
	for i, word := range words {
		item := word
		if i < len(words)-1 {
			item += ","
		}
		if line.Len() > 0 && line.Len()+1+len(item) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(item)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

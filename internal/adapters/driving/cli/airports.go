package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/xdxfgen/internal/logger"
)

// Flags for the airports command.
var (
	airportLetters     string
	airportURLTemplate string
)

var airportsCmd = &cobra.Command{
	Use:   "airports",
	Short: "Convert the Wikipedia IATA airport code lists",
	Long: `Download the Wikipedia "List of airports by IATA airport code" pages and
convert every airport into an article keyed by its IATA and ICAO codes.

Pages are fetched one letter at a time, A to Y by default.`,
	Args: cobra.NoArgs,
	RunE: runAirports,
}

func init() {
	airportsCmd.Flags().StringVar(&airportLetters, "letters", "", "Page letters to fetch, in order (default from config)")
	airportsCmd.Flags().StringVar(&airportURLTemplate, "url-template", "", "Page URL with one %s for the letter (default from config)")
	rootCmd.AddCommand(airportsCmd)
}

func runAirports(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if airportLetters != "" {
		settings.Wikipedia.Letters = strings.ToUpper(airportLetters)
	}
	if airportURLTemplate != "" {
		settings.Wikipedia.URLTemplate = airportURLTemplate
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger.Section("Airports")
	logger.Info("letters %s, user agent %s", settings.Wikipedia.Letters, settings.Wikipedia.UserAgent)
	return writeArticles(cmd, newAirportService(settings).Convert(cmd.Context(), settings.Wikipedia.Letters))
}

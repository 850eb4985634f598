// Package cli implements the xdxfgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/xdxfgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/xdxfgen/internal/adapters/driven/xdxf"
	"github.com/custodia-labs/xdxfgen/internal/connectors/filesystem"
	"github.com/custodia-labs/xdxfgen/internal/connectors/wikipedia"
	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driving"
	"github.com/custodia-labs/xdxfgen/internal/core/services"
	"github.com/custodia-labs/xdxfgen/internal/logger"
	"github.com/custodia-labs/xdxfgen/internal/normalisers/html"
	"github.com/custodia-labs/xdxfgen/internal/postprocessors"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	configDir  string
	outputPath string
)

// settingsService is created from the config directory on first use.
// Tests install their own.
var settingsService driving.SettingsService

// Service factories, replaced in tests.
var (
	newGlossaryService = func(settings *domain.AppSettings) driving.GlossaryService {
		pipeline := postprocessors.NewDefaultPipeline(settings.Glossary.Pluralizable)
		logger.Debug("glossary stages: %s", strings.Join(pipeline.Names(), ", "))
		return services.NewGlossaryService(
			filesystem.New(),
			html.New(),
			pipeline,
			xdxf.NewRenderer(),
		)
	}
	newAirportService = func(settings *domain.AppSettings) driving.AirportService {
		return services.NewAirportService(
			wikipedia.New(settings.Wikipedia),
			html.New(),
			xdxf.NewRenderer(),
			settings.Wikipedia,
		)
	}
)

var rootCmd = &cobra.Command{
	Use:   "xdxfgen",
	Short: "Convert HTML tables into XDXF dictionary articles",
	Long: `xdxfgen turns HTML tables into XDXF article fragments.

It reads a Word-exported 3-column glossary table (phrase, abbreviation,
definition) or the Wikipedia "List of airports by IATA airport code" pages
and writes <ar> articles ready to be placed inside a <lexicon> element.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.xdxfgen)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write articles to a file instead of stdout")
}

// Execute runs the root command. Cancelling ctx stops a running
// conversion.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetProgress(!verbose && term.IsTerminal(int(os.Stderr.Fd())))

	if settingsService != nil {
		return nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config: %s", store.Path())
	settingsService = services.NewSettingsService(store, version)
	return nil
}

// loadSettings returns the effective settings, validated.
func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// openOutput returns the destination for articles: the --output file or
// the command's standard output.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outputPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

// writeArticles streams the fragments of seq to the output.
func writeArticles(cmd *cobra.Command, seq iter.Seq2[string, error]) (err error) {
	w, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); err == nil && closeErr != nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()
	return xdxf.WriteAll(w, seq)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/xdxfgen/internal/logger"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary [path]",
	Short: "Convert a Word-exported glossary table",
	Long: `Convert the first table of a Word-exported HTML document into articles.

The table must have three columns: phrase, abbreviation and definition.
Phrases and abbreviations may hold several keys separated by "/". Known
terms inside definitions become <kref> cross-references and "Example:"
sentences are marked as examples.

Without a path the file configured as glossary.input is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGlossary,
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
}

func runGlossary(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	source := settings.Glossary.Input
	if len(args) > 0 {
		source = args[0]
	}

	logger.Section("Glossary")
	logger.Info("converting %s", source)
	return writeArticles(cmd, newGlossaryService(settings).Convert(cmd.Context(), source))
}

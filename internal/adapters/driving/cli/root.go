// Package cli provides the recipes command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// version is set at build time.
var version = "dev"

// BookFactory builds a recipe book that talks to the backend described by api.
type BookFactory func(api domain.APISettings) (driving.RecipeBook, error)

// CatalogueFactory builds the reference backend's catalogue.
// The returned closer releases its storage.
type CatalogueFactory func(s domain.ServerSettings) (driving.RecipeCatalogue, io.Closer, error)

// Config holds what the commands need from the composition root.
type Config struct {
	Version      string
	Settings     driving.SettingsService
	NewBook      BookFactory
	NewCatalogue CatalogueFactory
}

var (
	settingsService driving.SettingsService
	newBook         BookFactory      = NewHTTPRecipeBook
	newCatalogue    CatalogueFactory = NewCatalogue

	verbose bool
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Keep a recipe book",
	Long: `recipes keeps a small recipe book on a REST backend.

Run without arguments in a terminal to open the interactive UI, or use the
subcommands to list, add, update and delete recipes from scripts.
'recipes serve' starts a reference backend.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend collection URL (overrides api.base_url)")
}

// Configure installs services and factories. Nil fields keep the defaults.
func Configure(cfg Config) {
	if cfg.Version != "" {
		version = cfg.Version
	}
	if cfg.Settings != nil {
		settingsService = cfg.Settings
	}
	if cfg.NewBook != nil {
		newBook = cfg.NewBook
	}
	if cfg.NewCatalogue != nil {
		newCatalogue = cfg.NewCatalogue
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Command returns the root command.
func Command() *cobra.Command {
	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal(cmd.OutOrStdout()) {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// currentSettings returns stored settings, or the defaults when no
// settings service is configured.
func currentSettings() (domain.Settings, error) {
	if settingsService == nil {
		return domain.DefaultSettings(), nil
	}
	s, err := settingsService.Get()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// openBook builds a recipe book for the configured backend, applying --api-url.
func openBook() (driving.RecipeBook, error) {
	if newBook == nil {
		return nil, errors.New("recipe book not configured")
	}

	s, err := currentSettings()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		s.API.BaseURL = apiURL
	}

	logger.Debug("backend: %s", s.API.BaseURL)
	return newBook(s.API)
}

// Command recipes is a terminal client and reference backend for a recipe book.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/config/file"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/cli"
	"github.com/custodia-labs/recipe-book/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipes: %v\n", err)
		os.Exit(1)
	}

	cli.Configure(cli.Config{
		Version:      version,
		Settings:     services.NewSettingsService(configStore),
		NewBook:      cli.NewHTTPRecipeBook,
		NewCatalogue: cli.NewCatalogue,
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/api/httpapi"
	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
	"github.com/custodia-labs/recipe-book/internal/core/services"
)

// NewHTTPRecipeBook builds a recipe book backed by the REST client.
func NewHTTPRecipeBook(api domain.APISettings) (driving.RecipeBook, error) {
	client, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   api.BaseURL,
		Timeout:   api.Timeout,
		RateLimit: api.RateLimit,
		UserAgent: "recipes/" + version,
	})
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}
	return services.NewRecipeBook(client), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewCatalogue builds the reference backend catalogue on the configured storage.
func NewCatalogue(s domain.ServerSettings) (driving.RecipeCatalogue, io.Closer, error) {
	switch s.Storage {
	case domain.StorageSQLite:
		store, err := sqlite.NewStore(s.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return services.NewCatalogue(store.RecipeStore()), store, nil
	case domain.StorageMemory, "":
		return services.NewCatalogue(memory.NewRecipeStore()), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("storage %q: %w", s.Storage, domain.ErrInvalidInput)
	}
}

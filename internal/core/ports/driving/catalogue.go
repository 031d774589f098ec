package driving

import (
	"context"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeCatalogue is the server-side recipe collection exposed by the
// reference backend.
type RecipeCatalogue interface {
	// List returns all recipes in insertion order.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Get retrieves a recipe by ID.
	Get(ctx context.Context, id string) (domain.Recipe, error)

	// Create validates the draft and stores it under a new ID.
	Create(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error)

	// Update validates the draft and replaces the recipe with the given ID.
	Update(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error)

	// Delete removes the recipe with the given ID.
	Delete(ctx context.Context, id string) error
}

package driven

import (
	"context"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeStore persists recipes on the server side.
// List returns recipes in insertion order.
type RecipeStore interface {
	// List returns all recipes in insertion order.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Get retrieves a recipe by ID.
	// Returns domain.ErrNotFound if the recipe doesn't exist.
	Get(ctx context.Context, id string) (domain.Recipe, error)

	// Insert adds a new recipe. The ID must already be set.
	Insert(ctx context.Context, recipe domain.Recipe) error

	// Update replaces an existing recipe.
	// Returns domain.ErrNotFound if the recipe doesn't exist.
	Update(ctx context.Context, recipe domain.Recipe) error

	// Delete removes a recipe.
	// Returns domain.ErrNotFound if the recipe doesn't exist.
	Delete(ctx context.Context, id string) error
}

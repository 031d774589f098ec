package driven

import (
	"context"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeSource is the remote recipe collection the client mirrors.
// Every failure is reported as a *domain.TransportError.
type RecipeSource interface {
	// List returns the full collection in backend order.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Create stores a new recipe and returns it with its backend-assigned ID.
	Create(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error)

	// Update replaces the fields of the recipe with the given ID
	// and returns the stored record.
	Update(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error)

	// Delete removes the recipe with the given ID.
	Delete(ctx context.Context, id string) error
}

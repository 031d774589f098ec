package driving

import (
	"context"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeBook is the client-side controller behind the recipe form and table.
// It owns the local recipe list and the form state.
type RecipeBook interface {
	// Initialize loads the collection once. On failure the list stays empty
	// and the error is recorded as BookState.LoadErr.
	Initialize(ctx context.Context) error

	// Submit creates a recipe, or updates the one being edited.
	// Empty fields yield a *domain.ValidationError without contacting the backend.
	Submit(ctx context.Context, name, ingredients string) (domain.Recipe, error)

	// StartEdit loads the recipe into the form and switches to editing mode.
	// Returns domain.ErrNotFound if no local recipe has the ID.
	StartEdit(id string) error

	// CancelEdit clears the form and returns to creating mode.
	CancelEdit()

	// Delete removes the recipe from the backend and the local list.
	Delete(ctx context.Context, id string) error

	// SetDraft records the current form input values.
	SetDraft(name, ingredients string)

	// State returns a copy of the current state.
	State() domain.BookState
}

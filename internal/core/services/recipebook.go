package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// Ensure RecipeBook implements the interface.
var _ driving.RecipeBook = (*RecipeBook)(nil)

// errUnusableID is reported when a created recipe has no ID or one already listed.
var errUnusableID = errors.New("backend returned an unusable id")

// RecipeBook mirrors the remote recipe collection and drives the
// create/edit form. It is safe for concurrent use. Source calls are made
// outside the lock and at most one mutation is in flight at a time.
type RecipeBook struct {
	source driven.RecipeSource

	mu      sync.Mutex
	recipes []domain.Recipe
	form    domain.FormState
	loadErr error
	busy    bool
}

// NewRecipeBook creates a recipe book backed by the given source.
func NewRecipeBook(source driven.RecipeSource) *RecipeBook {
	return &RecipeBook{source: source}
}

// Initialize loads the collection from the source.
func (b *RecipeBook) Initialize(ctx context.Context) error {
	if b.source == nil {
		return domain.ErrNotConfigured
	}

	recipes, err := b.source.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		logger.Error("load recipes: %v", err)
		b.recipes = nil
		b.loadErr = err
		return fmt.Errorf("load recipes: %w", err)
	}

	b.recipes = append([]domain.Recipe(nil), recipes...)
	b.loadErr = nil
	logger.Debug("loaded %d recipes", len(recipes))
	return nil
}

// Submit validates the fields and creates or updates a recipe depending
// on the form mode. On success the form returns to creating mode.
func (b *RecipeBook) Submit(ctx context.Context, name, ingredients string) (domain.Recipe, error) {
	if b.source == nil {
		return domain.Recipe{}, domain.ErrNotConfigured
	}

	draft := domain.RecipeDraft{Name: name, Ingredients: ingredients}
	if err := draft.Validate(); err != nil {
		logger.Debug("submit rejected: %v", err)
		return domain.Recipe{}, err
	}

	form, err := b.begin()
	if err != nil {
		return domain.Recipe{}, err
	}

	var recipe domain.Recipe
	if form.Editing() {
		recipe, err = b.source.Update(ctx, form.EditID, draft)
	} else {
		recipe, err = b.source.Create(ctx, draft)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.busy = false

	if err != nil {
		if form.Editing() {
			logger.Error("update recipe %s: %v", form.EditID, err)
			return domain.Recipe{}, fmt.Errorf("update recipe: %w", err)
		}
		logger.Error("create recipe: %v", err)
		return domain.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}

	if form.Editing() {
		recipe.ID = form.EditID
		if i := domain.IndexOf(b.recipes, form.EditID); i >= 0 {
			b.recipes[i] = recipe
		}
		logger.Info("updated recipe %s", recipe.ID)
	} else {
		if recipe.ID == "" || domain.IndexOf(b.recipes, recipe.ID) >= 0 {
			err := &domain.TransportError{Op: "create", Err: fmt.Errorf("%w: %q", errUnusableID, recipe.ID)}
			logger.Error("create recipe: %v", err)
			return domain.Recipe{}, fmt.Errorf("create recipe: %w", err)
		}
		b.recipes = append(b.recipes, recipe)
		logger.Info("created recipe %s", recipe.ID)
	}

	// An edit started while the request was in flight survives it.
	if b.form.Mode == form.Mode && b.form.EditID == form.EditID {
		b.form = domain.FormState{}
	}
	return recipe, nil
}

// StartEdit copies the recipe with the given ID into the form.
func (b *RecipeBook) StartEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := domain.IndexOf(b.recipes, id)
	if i < 0 {
		return fmt.Errorf("edit recipe %s: %w", id, domain.ErrNotFound)
	}

	r := b.recipes[i]
	b.form = domain.FormState{
		Mode:        domain.FormEditing,
		EditID:      r.ID,
		Name:        r.Name,
		Ingredients: r.Ingredients,
	}
	return nil
}

// CancelEdit clears the form and returns to creating mode.
func (b *RecipeBook) CancelEdit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = domain.FormState{}
}

// Delete removes the recipe from the source and then from the local list.
func (b *RecipeBook) Delete(ctx context.Context, id string) error {
	if b.source == nil {
		return domain.ErrNotConfigured
	}

	if _, err := b.begin(); err != nil {
		return err
	}

	err := b.source.Delete(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.busy = false

	if err != nil {
		logger.Error("delete recipe %s: %v", id, err)
		return fmt.Errorf("delete recipe: %w", err)
	}

	if i := domain.IndexOf(b.recipes, id); i >= 0 {
		b.recipes = append(b.recipes[:i:i], b.recipes[i+1:]...)
	}
	logger.Info("deleted recipe %s", id)
	return nil
}

// SetDraft records the current form input values.
func (b *RecipeBook) SetDraft(name, ingredients string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form.Name = name
	b.form.Ingredients = ingredients
}

// State returns a copy of the current state.
func (b *RecipeBook) State() domain.BookState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.BookState{
		Recipes: append([]domain.Recipe(nil), b.recipes...),
		Form:    b.form,
		LoadErr: b.loadErr,
		Busy:    b.busy,
	}
}

// begin marks a mutation as in flight and returns the form it applies to.
func (b *RecipeBook) begin() (domain.FormState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.busy {
		return domain.FormState{}, domain.ErrOperationInFlight
	}
	b.busy = true
	return b.form, nil
}

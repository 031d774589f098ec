package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
)

// Ensure Catalogue implements the interface.
var _ driving.RecipeCatalogue = (*Catalogue)(nil)

// Catalogue is the server-side recipe collection.
type Catalogue struct {
	store driven.RecipeStore
	newID func() string
}

// NewCatalogue creates a catalogue over the given store.
// New recipes receive random UUIDs.
func NewCatalogue(store driven.RecipeStore) *Catalogue {
	return &Catalogue{
		store: store,
		newID: uuid.NewString,
	}
}

// List returns all recipes in insertion order.
func (c *Catalogue) List(ctx context.Context) ([]domain.Recipe, error) {
	if c.store == nil {
		return nil, domain.ErrNotConfigured
	}
	return c.store.List(ctx)
}

// Get retrieves a recipe by ID.
func (c *Catalogue) Get(ctx context.Context, id string) (domain.Recipe, error) {
	if c.store == nil {
		return domain.Recipe{}, domain.ErrNotConfigured
	}
	return c.store.Get(ctx, id)
}

// Create validates the draft and stores it under a new ID.
func (c *Catalogue) Create(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error) {
	if c.store == nil {
		return domain.Recipe{}, domain.ErrNotConfigured
	}
	draft = draft.Normalise()
	if err := draft.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	recipe := domain.Recipe{
		ID:          c.newID(),
		Name:        draft.Name,
		Ingredients: draft.Ingredients,
	}
	if err := c.store.Insert(ctx, recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("insert recipe: %w", err)
	}
	return recipe, nil
}

// Update validates the draft and replaces the recipe with the given ID.
func (c *Catalogue) Update(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error) {
	if c.store == nil {
		return domain.Recipe{}, domain.ErrNotConfigured
	}
	if id == "" {
		return domain.Recipe{}, domain.ErrInvalidInput
	}
	draft = draft.Normalise()
	if err := draft.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	recipe := domain.Recipe{
		ID:          id,
		Name:        draft.Name,
		Ingredients: draft.Ingredients,
	}
	if err := c.store.Update(ctx, recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("update recipe %s: %w", id, err)
	}
	return recipe, nil
}

// Delete removes the recipe with the given ID.
func (c *Catalogue) Delete(ctx context.Context, id string) error {
	if c.store == nil {
		return domain.ErrNotConfigured
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	return nil
}

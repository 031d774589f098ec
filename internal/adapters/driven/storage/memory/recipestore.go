package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
)

// Ensure RecipeStore implements the interface.
var _ driven.RecipeStore = (*RecipeStore)(nil)

// RecipeStore is an in-memory implementation of driven.RecipeStore.
// Recipes are kept in insertion order.
type RecipeStore struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
}

// NewRecipeStore creates a new in-memory recipe store.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{}
}

// List returns all recipes in insertion order.
func (s *RecipeStore) List(_ context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Recipe, len(s.recipes))
	copy(result, s.recipes)
	return result, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeStore) Get(_ context.Context, id string) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := domain.IndexOf(s.recipes, id)
	if i < 0 {
		return domain.Recipe{}, domain.ErrNotFound
	}
	return s.recipes[i], nil
}

// Insert adds a new recipe.
func (s *RecipeStore) Insert(_ context.Context, recipe domain.Recipe) error {
	if recipe.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if domain.IndexOf(s.recipes, recipe.ID) >= 0 {
		return domain.ErrInvalidInput
	}
	s.recipes = append(s.recipes, recipe)
	return nil
}

// Update replaces an existing recipe in place.
func (s *RecipeStore) Update(_ context.Context, recipe domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := domain.IndexOf(s.recipes, recipe.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.recipes[i] = recipe
	return nil
}

// Delete removes a recipe.
func (s *RecipeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := domain.IndexOf(s.recipes, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	return nil
}

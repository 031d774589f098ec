package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
)

// Ensure mockRecipeSource implements the interface.
var _ driven.RecipeSource = (*mockRecipeSource)(nil)

// mockRecipeSource is a function-field RecipeSource that counts calls.
type mockRecipeSource struct {
	mu sync.Mutex

	listFn   func(ctx context.Context) ([]domain.Recipe, error)
	createFn func(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error)
	updateFn func(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error)
	deleteFn func(ctx context.Context, id string) error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	updatedIDs  []string
}

func (m *mockRecipeSource) List(ctx context.Context) ([]domain.Recipe, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRecipeSource) Create(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	if m.createFn != nil {
		return m.createFn(ctx, draft)
	}
	return domain.Recipe{ID: "new", Name: draft.Name, Ingredients: draft.Ingredients}, nil
}

func (m *mockRecipeSource) Update(ctx context.Context, id string, draft domain.RecipeDraft) (domain.Recipe, error) {
	m.mu.Lock()
	m.updateCalls++
	m.updatedIDs = append(m.updatedIDs, id)
	m.mu.Unlock()
	if m.updateFn != nil {
		return m.updateFn(ctx, id, draft)
	}
	return domain.Recipe{ID: id, Name: draft.Name, Ingredients: draft.Ingredients}, nil
}

func (m *mockRecipeSource) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRecipeSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls + m.createCalls + m.updateCalls + m.deleteCalls
}

// listing returns a listFn that yields the given recipes.
func listing(recipes ...domain.Recipe) func(context.Context) ([]domain.Recipe, error) {
	return func(context.Context) ([]domain.Recipe, error) {
		return recipes, nil
	}
}

// sequentialIDs returns a createFn assigning ids "1", "2", ...
func sequentialIDs() func(context.Context, domain.RecipeDraft) (domain.Recipe, error) {
	var mu sync.Mutex
	next := 0
	return func(_ context.Context, draft domain.RecipeDraft) (domain.Recipe, error) {
		mu.Lock()
		defer mu.Unlock()
		next++
		return domain.Recipe{ID: fmt.Sprint(next), Name: draft.Name, Ingredients: draft.Ingredients}, nil
	}
}

func transportErr(op string) error {
	return &domain.TransportError{Op: op, Method: "GET", URL: "http://backend/api", StatusCode: 500}
}

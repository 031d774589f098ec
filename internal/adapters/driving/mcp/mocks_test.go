package mcp

import (
	"context"
	"strconv"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/services"
)

// stubSource is an in-memory driven.RecipeSource.
type stubSource struct {
	recipes []domain.Recipe
	listErr error
	nextID  int
	updated []string
	deleted []string
}

func (s *stubSource) List(_ context.Context) ([]domain.Recipe, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]domain.Recipe(nil), s.recipes...), nil
}

func (s *stubSource) Create(_ context.Context, d domain.RecipeDraft) (domain.Recipe, error) {
	s.nextID++
	r := domain.Recipe{ID: strconv.Itoa(s.nextID), Name: d.Name, Ingredients: d.Ingredients}
	s.recipes = append(s.recipes, r)
	return r, nil
}

func (s *stubSource) Update(_ context.Context, id string, d domain.RecipeDraft) (domain.Recipe, error) {
	s.updated = append(s.updated, id)
	i := domain.IndexOf(s.recipes, id)
	if i < 0 {
		return domain.Recipe{}, &domain.TransportError{Op: "update", Method: "PUT", URL: "/api/" + id, StatusCode: 404}
	}
	s.recipes[i] = domain.Recipe{ID: id, Name: d.Name, Ingredients: d.Ingredients}
	return s.recipes[i], nil
}

func (s *stubSource) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	if i := domain.IndexOf(s.recipes, id); i >= 0 {
		s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	}
	return nil
}

func seeded() *stubSource {
	return &stubSource{
		recipes: []domain.Recipe{
			{ID: "a", Name: "Soup", Ingredients: "water, salt"},
			{ID: "b", Name: "Tea", Ingredients: "leaves"},
		},
	}
}

func newTestServer(src *stubSource) *Server {
	s, err := NewServer(&Ports{Book: services.NewRecipeBook(src)})
	if err != nil {
		panic(err)
	}
	return s
}

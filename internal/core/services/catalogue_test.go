package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

func TestCatalogue_Create_AssignsUUID(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())
	ctx := context.Background()

	recipe, err := catalogue.Create(ctx, domain.RecipeDraft{Name: " Soup ", Ingredients: "water, salt"})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(recipe.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "Soup", recipe.Name)

	got, err := catalogue.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe, got)
}

func TestCatalogue_Create_UniqueIDsInOrder(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())
	ctx := context.Background()

	first, err := catalogue.Create(ctx, domain.RecipeDraft{Name: "Soup", Ingredients: "water"})
	require.NoError(t, err)
	second, err := catalogue.Create(ctx, domain.RecipeDraft{Name: "Tea", Ingredients: "leaves"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	recipes, err := catalogue.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Recipe{first, second}, recipes)
}

func TestCatalogue_Create_Invalid(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())

	_, err := catalogue.Create(context.Background(), domain.RecipeDraft{Name: "Soup"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	recipes, _ := catalogue.List(context.Background())
	assert.Empty(t, recipes)
}

func TestCatalogue_Create_WhitespaceOnly(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())

	_, err := catalogue.Create(context.Background(), domain.RecipeDraft{Name: "Soup", Ingredients: " \n"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{domain.FieldIngredients}, verr.Fields)
}

func TestCatalogue_Update(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())
	ctx := context.Background()
	created, err := catalogue.Create(ctx, domain.RecipeDraft{Name: "Soup", Ingredients: "water"})
	require.NoError(t, err)

	updated, err := catalogue.Update(ctx, created.ID, domain.RecipeDraft{Name: "Stew", Ingredients: "beef"})

	require.NoError(t, err)
	assert.Equal(t, domain.Recipe{ID: created.ID, Name: "Stew", Ingredients: "beef"}, updated)
}

func TestCatalogue_Update_Errors(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())
	ctx := context.Background()

	_, err := catalogue.Update(ctx, "missing", domain.RecipeDraft{Name: "a", Ingredients: "b"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalogue.Update(ctx, "", domain.RecipeDraft{Name: "a", Ingredients: "b"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = catalogue.Update(ctx, "x", domain.RecipeDraft{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogue_Delete(t *testing.T) {
	catalogue := NewCatalogue(memory.NewRecipeStore())
	ctx := context.Background()
	created, err := catalogue.Create(ctx, domain.RecipeDraft{Name: "Soup", Ingredients: "water"})
	require.NoError(t, err)

	require.NoError(t, catalogue.Delete(ctx, created.ID))
	assert.ErrorIs(t, catalogue.Delete(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, catalogue.Delete(ctx, ""), domain.ErrInvalidInput)
}

func TestCatalogue_NilStore(t *testing.T) {
	catalogue := NewCatalogue(nil)
	ctx := context.Background()

	_, err := catalogue.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = catalogue.Create(ctx, domain.RecipeDraft{Name: "a", Ingredients: "b"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

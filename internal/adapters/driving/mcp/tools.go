package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeOutput is a single recipe as returned by the tools.
type RecipeOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// ListInput is the input schema for list_recipes.
type ListInput struct{}

// ListOutput is the output schema for list_recipes.
type ListOutput struct {
	Recipes []RecipeOutput `json:"recipes"`
	Count   int            `json:"count"`
}

// AddInput is the input schema for add_recipe.
type AddInput struct {
	Name        string `json:"name" jsonschema:"the recipe name"`
	Ingredients string `json:"ingredients" jsonschema:"free-form ingredients text"`
}

// UpdateInput is the input schema for update_recipe.
// Empty fields keep their current value.
type UpdateInput struct {
	ID          string `json:"id" jsonschema:"id of the recipe to change"`
	Name        string `json:"name,omitempty" jsonschema:"new recipe name"`
	Ingredients string `json:"ingredients,omitempty" jsonschema:"new ingredients text"`
}

// DeleteInput is the input schema for delete_recipe.
type DeleteInput struct {
	ID string `json:"id" jsonschema:"id of the recipe to delete"`
}

// DeleteOutput is the output schema for delete_recipe.
type DeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_recipes",
		Description: "List every recipe in the recipe book",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_recipe",
		Description: "Add a recipe. Name and ingredients are required",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_recipe",
		Description: "Change the name or ingredients of an existing recipe",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_recipe",
		Description: "Delete a recipe by id",
	}, s.handleDelete)
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Book.Initialize(ctx); err != nil {
		return nil, ListOutput{}, err
	}

	recipes := s.ports.Book.State().Recipes
	out := ListOutput{
		Recipes: make([]RecipeOutput, len(recipes)),
		Count:   len(recipes),
	}
	for i, r := range recipes {
		out.Recipes[i] = toOutput(r)
	}
	return nil, out, nil
}

func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Submit creates only when the form is not editing.
	s.ports.Book.CancelEdit()
	r, err := s.ports.Book.Submit(ctx, input.Name, input.Ingredients)
	if err != nil {
		return nil, RecipeOutput{}, err
	}
	return nil, toOutput(r), nil
}

func (s *Server) handleUpdate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	if input.ID == "" {
		return nil, RecipeOutput{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.ports.Book
	if domain.IndexOf(book.State().Recipes, input.ID) < 0 {
		if err := book.Initialize(ctx); err != nil {
			return nil, RecipeOutput{}, err
		}
	}
	if err := book.StartEdit(input.ID); err != nil {
		return nil, RecipeOutput{}, err
	}

	form := book.State().Form
	name, ingredients := form.Name, form.Ingredients
	if input.Name != "" {
		name = input.Name
	}
	if input.Ingredients != "" {
		ingredients = input.Ingredients
	}

	r, err := book.Submit(ctx, name, ingredients)
	if err != nil {
		book.CancelEdit()
		return nil, RecipeOutput{}, err
	}
	return nil, toOutput(r), nil
}

func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Book.Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("deleting %s: %w", input.ID, err)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

func toOutput(r domain.Recipe) RecipeOutput {
	return RecipeOutput{ID: r.ID, Name: r.Name, Ingredients: r.Ingredients}
}

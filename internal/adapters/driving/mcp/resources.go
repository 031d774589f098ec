package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

const uriScheme = "recipes://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recipes",
		Name:        "recipes",
		Description: "All recipes in the recipe book",
		MIMEType:    "application/json",
	}, s.handleRecipesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recipes/{recipeId}",
		Name:        "recipe",
		Description: "A single recipe",
		MIMEType:    "application/json",
	}, s.handleRecipeResource)
}

// handleRecipesResource returns the full recipe list as JSON.
func (s *Server) handleRecipesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeOutput, len(recipes))
	for i, r := range recipes {
		out[i] = toOutput(r)
	}
	return jsonResult(req.Params.URI, out)
}

// handleRecipeResource returns one recipe by id.
func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractRecipeID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := domain.IndexOf(recipes, id)
	if i < 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, toOutput(recipes[i]))
}

func (s *Server) load(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Book.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return s.ports.Book.State().Recipes, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recipes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecipeID extracts the id from a URI like recipes://recipes/{recipeId}.
func extractRecipeID(uri string) string {
	const prefix = uriScheme + "recipes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

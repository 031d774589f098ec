package mcp

import (
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Book lists and mutates recipes.
	Book driving.RecipeBook
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Book == nil {
		return ErrMissingRecipeBook
	}
	return nil
}

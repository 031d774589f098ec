// Package mcp provides an MCP (Model Context Protocol) server adapter for the recipe book.
// It lets AI assistants list and edit recipes through the RecipeBook port.
package mcp

import "errors"

// ErrMissingRecipeBook is returned when the recipe book is not provided.
var ErrMissingRecipeBook = errors.New("mcp: recipe book is required")

// ErrMissingID is returned when a tool that targets one recipe gets no id.
var ErrMissingID = errors.New("mcp: recipe id is required")

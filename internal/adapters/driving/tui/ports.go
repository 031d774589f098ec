// Package tui provides an interactive terminal user interface for the recipe book.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Book owns the recipe list and the form state.
	Book driving.RecipeBook
}

// NewPorts creates a new Ports aggregate.
func NewPorts(book driving.RecipeBook) *Ports {
	return &Ports{Book: book}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Book == nil {
		return ErrMissingRecipeBook
	}
	return nil
}

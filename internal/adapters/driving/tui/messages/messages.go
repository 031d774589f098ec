// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRecipes is the recipe form and table.
	ViewRecipes ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRecipes:
		return "recipes"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// RecipesLoaded signals that the initial list request finished.
// The list itself is read from the recipe book.
type RecipesLoaded struct {
	Err error
}

// RecipeSubmitted carries the outcome of a create or update.
type RecipeSubmitted struct {
	Recipe  domain.Recipe
	Editing bool
	Err     error
}

// RecipeDeleted carries the outcome of a delete.
type RecipeDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

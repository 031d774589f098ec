package domain

import "strings"

// Recipe is one entry in the recipe book.
type Recipe struct {
	// ID is an opaque identifier assigned by the backend.
	ID string `json:"id" yaml:"id"`

	// Name is the recipe title.
	Name string `json:"name" yaml:"name"`

	// Ingredients is free-form ingredients text.
	Ingredients string `json:"ingredients" yaml:"ingredients"`
}

// Draft returns the user-editable fields of the recipe.
func (r Recipe) Draft() RecipeDraft {
	return RecipeDraft{Name: r.Name, Ingredients: r.Ingredients}
}

// RecipeDraft holds the fields sent to the backend on create and update.
type RecipeDraft struct {
	Name        string `json:"name" yaml:"name"`
	Ingredients string `json:"ingredients" yaml:"ingredients"`
}

// Normalise trims surrounding whitespace from both fields.
func (d RecipeDraft) Normalise() RecipeDraft {
	return RecipeDraft{
		Name:        strings.TrimSpace(d.Name),
		Ingredients: strings.TrimSpace(d.Ingredients),
	}
}

// Validate reports the required fields that are empty. Values are not
// trimmed; call Normalise first for a stricter check.
func (d RecipeDraft) Validate() error {
	var missing []string
	if d.Name == "" {
		missing = append(missing, FieldName)
	}
	if d.Ingredients == "" {
		missing = append(missing, FieldIngredients)
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Field names used in validation errors.
const (
	FieldName        = "name"
	FieldIngredients = "ingredients"
)

// IndexOf returns the position of the recipe with the given ID, or -1.
func IndexOf(recipes []Recipe, id string) int {
	for i := range recipes {
		if recipes[i].ID == id {
			return i
		}
	}
	return -1
}

// Package wire defines the JSON representation of recipes exchanged with
// the recipe backend.
//
// The backend names the identifier "_id" and carries the ingredients text
// in a field named "age". Both are mapped to domain fields here and nowhere
// else. Records that use "id" instead of "_id" are also accepted.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// Record is a recipe as sent and received over HTTP.
type Record struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Age  string `json:"age"`
}

// Errors reported by Check for records that cannot stand for a stored recipe.
var (
	ErrMissingID   = errors.New("missing id")
	ErrDuplicateID = errors.New("duplicate id")
)

// Records is a decoded collection.
type Records []Record

// Check reports a record without an identifier.
func (r Record) Check() error {
	if r.ID == "" {
		return ErrMissingID
	}
	return nil
}

// Check reports records without an identifier or sharing one.
func (rs Records) Check() error {
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		if err := r.Check(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("record %d: %w %q", i, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// Draft is the request body for create and update.
type Draft struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// UnmarshalJSON decodes a record, falling back to "id" when "_id" is absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		UnderscoreID *string `json:"_id"`
		ID           *string `json:"id"`
		Name         string  `json:"name"`
		Age          string  `json:"age"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{Name: raw.Name, Age: raw.Age}
	switch {
	case raw.UnderscoreID != nil:
		r.ID = *raw.UnderscoreID
	case raw.ID != nil:
		r.ID = *raw.ID
	}
	return nil
}

// FromRecipe converts a domain recipe to its wire form.
func FromRecipe(r domain.Recipe) Record {
	return Record{ID: r.ID, Name: r.Name, Age: r.Ingredients}
}

// Recipe converts the record to a domain recipe.
func (r Record) Recipe() domain.Recipe {
	return domain.Recipe{ID: r.ID, Name: r.Name, Ingredients: r.Age}
}

// FromRecipes converts a slice of domain recipes. The result is never nil
// so that an empty collection encodes as [].
func FromRecipes(recipes []domain.Recipe) []Record {
	out := make([]Record, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, FromRecipe(r))
	}
	return out
}

// Recipes converts a slice of records to domain recipes.
func Recipes(records []Record) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(records))
	for _, r := range records {
		out = append(out, r.Recipe())
	}
	return out
}

// FromDraft converts a domain draft to its wire form.
func FromDraft(d domain.RecipeDraft) Draft {
	return Draft{Name: d.Name, Age: d.Ingredients}
}

// RecipeDraft converts the request body to a domain draft.
func (d Draft) RecipeDraft() domain.RecipeDraft {
	return domain.RecipeDraft{Name: d.Name, Ingredients: d.Age}
}

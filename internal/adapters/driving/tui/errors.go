package tui

import "errors"

// ErrMissingRecipeBook is returned when the recipe book is not provided.
var ErrMissingRecipeBook = errors.New("tui: recipe book is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

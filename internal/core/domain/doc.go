// Package domain defines the core business entities for the recipe book.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Recipe: A stored recipe with a backend-assigned identifier
//   - RecipeDraft: The user-editable fields of a recipe
//   - FormState: The transient state of the create/edit form
//   - BookState: A snapshot of the recipe book as shown to the user
//   - Settings: Client and reference server configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

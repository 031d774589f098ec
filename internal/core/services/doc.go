// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - RecipeBook: client-side controller for the recipe form and table
//   - Catalogue: server-side recipe collection behind the reference API
//   - SettingsService: typed access to the TOML configuration
package services

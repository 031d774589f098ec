// Package list provides the recipe table for the TUI.
package list

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// RecipeTable shows recipes as rows of name and ingredients.
type RecipeTable struct {
	table   table.Model
	recipes []domain.Recipe
	styles  *styles.Styles
	width   int
	height  int
}

// NewRecipeTable creates an empty, unfocused recipe table.
func NewRecipeTable(s *styles.Styles) *RecipeTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(s.Theme().Secondary).Bold(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &RecipeTable{
		table:  t,
		styles: s,
		width:  80,
		height: 10,
	}
}

func columns(width int) []table.Column {
	nameWidth := width / 3
	if nameWidth < 10 {
		nameWidth = 10
	}
	ingredientsWidth := width - nameWidth - 4
	if ingredientsWidth < 10 {
		ingredientsWidth = 10
	}
	return []table.Column{
		{Title: "Recipe", Width: nameWidth},
		{Title: "Ingredients", Width: ingredientsWidth},
	}
}

// Init initialises the table.
func (r *RecipeTable) Init() tea.Cmd {
	return nil
}

// Update handles table navigation.
func (r *RecipeTable) Update(msg tea.Msg) (*RecipeTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the table inside a border that takes the primary colour
// while the table has focus.
func (r *RecipeTable) View() string {
	if len(r.recipes) == 0 {
		return r.styles.Muted.Render("No recipes yet")
	}
	frame := r.styles.Border
	if r.table.Focused() {
		frame = frame.BorderForeground(r.styles.Theme().Primary)
	}
	return frame.Render(r.table.View())
}

// SetRecipes replaces the rows. The cursor is kept in range.
func (r *RecipeTable) SetRecipes(recipes []domain.Recipe) {
	r.recipes = recipes
	rows := make([]table.Row, len(recipes))
	for i, rec := range recipes {
		rows[i] = table.Row{rec.Name, rec.Ingredients}
	}
	r.table.SetRows(rows)

	if c := r.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		r.table.SetCursor(len(rows) - 1)
	}
}

// Recipes returns the recipes currently shown.
func (r *RecipeTable) Recipes() []domain.Recipe {
	return r.recipes
}

// SelectedRecipe returns the recipe under the cursor.
func (r *RecipeTable) SelectedRecipe() (domain.Recipe, bool) {
	c := r.table.Cursor()
	if c < 0 || c >= len(r.recipes) {
		return domain.Recipe{}, false
	}
	return r.recipes[c], true
}

// Cursor returns the selected row index.
func (r *RecipeTable) Cursor() int {
	return r.table.Cursor()
}

// SetCursor moves the selection.
func (r *RecipeTable) SetCursor(i int) {
	r.table.SetCursor(i)
}

// Focus gives the table keyboard focus.
func (r *RecipeTable) Focus() {
	r.table.Focus()
}

// Blur removes keyboard focus.
func (r *RecipeTable) Blur() {
	r.table.Blur()
}

// Focused returns whether the table has focus.
func (r *RecipeTable) Focused() bool {
	return r.table.Focused()
}

// SetDimensions sets the table size.
func (r *RecipeTable) SetDimensions(width, height int) {
	r.width = width
	r.height = height
	height -= r.styles.Border.GetVerticalFrameSize()
	if height < 3 {
		height = 3
	}
	r.table.SetColumns(columns(width - r.styles.Border.GetHorizontalFrameSize()))
	r.table.SetHeight(height)
}

// Count returns the number of rows.
func (r *RecipeTable) Count() int {
	return len(r.recipes)
}

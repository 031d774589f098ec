// Package recipes provides the recipe form and table view for the TUI.
package recipes

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
)

// AlertRequired is shown when a submit is attempted with an empty field.
const AlertRequired = "Recipe and ingredients are required"

// Focus identifies the area receiving key input.
type Focus int

const (
	FocusName Focus = iota
	FocusIngredients
	FocusTable
)

// View is the recipe book screen.
type View struct {
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	book   driving.RecipeBook

	form   *input.Form
	table  *list.RecipeTable
	status *status.Bar

	focus   Focus
	alert   string
	loadErr error
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new recipes view.
func NewView(s *styles.Styles, km *keymap.KeyMap, book driving.RecipeBook) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		book:   book,
		form:   input.NewForm(s),
		table:  list.NewRecipeTable(s),
		status: status.NewBar(s, km),
	}
	v.setFocus(FocusName)
	return v
}

// SetContext sets the context passed to recipe book calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init starts the initial load.
func (v *View) Init() tea.Cmd {
	v.status.SetState(status.StateLoading)
	return tea.Batch(v.form.Init(), v.load())
}

func (v *View) load() tea.Cmd {
	book, ctx := v.book, v.ctx
	return func() tea.Msg {
		return messages.RecipesLoaded{Err: book.Initialize(ctx)}
	}
}

// Update handles messages for the recipes view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecipesLoaded:
		v.loadErr = msg.Err
		v.status.Clear()
		v.refresh()
		return v, nil

	case messages.RecipeSubmitted:
		if msg.Err != nil {
			return v, v.fail(msg.Err)
		}
		v.err = nil
		v.status.Clear()
		if msg.Editing {
			v.status.SetMessage("Recipe updated")
		} else {
			v.status.SetMessage("Recipe added")
		}
		v.refresh()
		st := v.book.State()
		v.form.SetValues(st.Form.Name, st.Form.Ingredients)
		return v, nil

	case messages.RecipeDeleted:
		if msg.Err != nil {
			return v, v.fail(msg.Err)
		}
		v.err = nil
		v.status.Clear()
		v.status.SetMessage("Recipe deleted")
		v.refresh()
		return v, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

// fail records a mutation error in the status bar.
func (v *View) fail(err error) tea.Cmd {
	v.err = err
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		v.alert = AlertRequired
		v.status.Clear()
		return nil
	}
	v.status.SetError(err)
	return nil
}

// refresh copies the book state into the table and submit label.
func (v *View) refresh() {
	st := v.book.State()
	v.table.SetRecipes(st.Recipes)
	v.status.SetRecipeCount(len(st.Recipes))
	v.form.SetLabel(st.Form.SubmitLabel())
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.alert != "" {
		if keymap.Matches(key, v.keymap.Dismiss) {
			v.alert = ""
		}
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.Submit):
		return v, v.submit()
	case keymap.Matches(key, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % 3)
	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.setFocus((v.focus + 2) % 3)
	case keymap.Matches(key, v.keymap.Back):
		return v, v.back()
	}

	if v.focus == FocusTable {
		return v.handleTableKey(msg)
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	v.book.SetDraft(v.form.Values())
	return v, cmd
}

func (v *View) handleTableKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case key == "q":
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(key, v.keymap.Edit):
		return v, v.edit()
	case keymap.Matches(key, v.keymap.Delete):
		return v, v.remove()
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// submit validates the form and sends it to the recipe book.
func (v *View) submit() tea.Cmd {
	name, ingredients := v.form.Values()
	v.book.SetDraft(name, ingredients)

	draft := domain.RecipeDraft{Name: name, Ingredients: ingredients}
	if err := draft.Validate(); err != nil {
		v.alert = AlertRequired
		return nil
	}

	editing := v.book.State().Form.Editing()
	v.status.SetState(status.StateSaving)
	book, ctx := v.book, v.ctx
	return func() tea.Msg {
		r, err := book.Submit(ctx, name, ingredients)
		return messages.RecipeSubmitted{Recipe: r, Editing: editing, Err: err}
	}
}

// edit loads the selected recipe into the form.
func (v *View) edit() tea.Cmd {
	r, ok := v.table.SelectedRecipe()
	if !ok {
		return nil
	}
	if err := v.book.StartEdit(r.ID); err != nil {
		v.status.SetError(err)
		return nil
	}

	st := v.book.State()
	v.form.SetValues(st.Form.Name, st.Form.Ingredients)
	v.form.SetLabel(st.Form.SubmitLabel())
	v.status.Clear()
	return v.setFocus(FocusName)
}

// remove deletes the selected recipe.
func (v *View) remove() tea.Cmd {
	r, ok := v.table.SelectedRecipe()
	if !ok {
		return nil
	}

	v.status.SetState(status.StateSaving)
	book, ctx, id := v.book, v.ctx, r.ID
	return func() tea.Msg {
		return messages.RecipeDeleted{ID: id, Err: book.Delete(ctx, id)}
	}
}

// back cancels an edit, or moves focus from the form to the table.
func (v *View) back() tea.Cmd {
	if v.book.State().Form.Editing() {
		v.book.CancelEdit()
		v.form.Reset()
		v.form.SetLabel(v.book.State().Form.SubmitLabel())
		v.status.Clear()
		v.status.SetMessage("Edit cancelled")
		return nil
	}
	if v.focus != FocusTable {
		return v.setFocus(FocusTable)
	}
	return nil
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	switch f {
	case FocusTable:
		v.form.Blur()
		v.table.Focus()
		v.status.SetHints(status.HintsTable)
		return nil
	case FocusIngredients:
		v.table.Blur()
		v.status.SetHints(status.HintsForm)
		return v.form.FocusField(input.FieldIngredients)
	default:
		v.table.Blur()
		v.status.SetHints(status.HintsForm)
		return v.form.FocusField(input.FieldName)
	}
}

// View renders the recipes view.
func (v *View) View() string {
	sections := []string{v.styles.Title.Render("Recipe Book"), ""}

	if v.loadErr != nil {
		sections = append(sections,
			v.styles.Banner.Render("Could not load recipes: "+v.loadErr.Error()), "")
	}

	sections = append(sections, v.form.View(), "", v.table.View())
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if v.alert != "" {
		alert := v.styles.Alert.Render(v.alert + "\n\n" + v.styles.Muted.Render("enter: ok"))
		if v.width > 0 && v.height > 1 {
			body = lipgloss.Place(v.width, v.height-1, lipgloss.Center, lipgloss.Center, alert)
		} else {
			body = alert
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, v.status.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.form.SetWidth(width)
	v.status.SetWidth(width)

	// Title, form and status bar take roughly fifteen rows.
	v.table.SetDimensions(width, height-15)
}

// Focus returns the area receiving key input.
func (v *View) Focus() Focus {
	return v.focus
}

// Alert returns the blocking alert text, if any.
func (v *View) Alert() string {
	return v.alert
}

// LoadErr returns the error from the initial load.
func (v *View) LoadErr() error {
	return v.loadErr
}

// Err returns the last mutation error.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}

// Form returns the recipe form.
func (v *View) Form() *input.Form {
	return v.form
}

// Table returns the recipe table.
func (v *View) Table() *list.RecipeTable {
	return v.table
}

// Ready returns whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

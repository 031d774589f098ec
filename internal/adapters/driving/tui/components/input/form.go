// Package input provides the recipe form for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
)

// Field identifies a form input.
type Field int

const (
	FieldName Field = iota
	FieldIngredients
)

// Form holds the recipe name input and the ingredients text area.
type Form struct {
	name        textinput.Model
	ingredients textarea.Model
	styles      *styles.Styles
	focus       Field
	focused     bool
	label       string
	width       int
}

// NewForm creates a recipe form with the name field focused.
func NewForm(s *styles.Styles) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}

	name := textinput.New()
	name.Placeholder = "Recipe name"
	name.CharLimit = 200
	name.Width = 50

	ingredients := textarea.New()
	ingredients.Placeholder = "Ingredients"
	ingredients.ShowLineNumbers = false
	ingredients.SetWidth(50)
	ingredients.SetHeight(4)

	f := &Form{
		name:        name,
		ingredients: ingredients,
		styles:      s,
		label:       "Add Recipe",
		width:       50,
	}
	f.Focus()
	return f
}

// Init initialises the form.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards the message to the focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	}
	return f, cmd
}

// View renders both fields and the submit label.
func (f *Form) View() string {
	nameBox, ingredientsBox := f.styles.InputField, f.styles.InputField
	if f.focused {
		if f.focus == FieldName {
			nameBox = f.styles.FocusedField
		} else {
			ingredientsBox = f.styles.FocusedField
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		f.styles.Subtitle.Render("Recipe Name"),
		nameBox.Render(f.name.View()),
		f.styles.Subtitle.Render("Ingredients"),
		ingredientsBox.Render(f.ingredients.View()),
		f.styles.Title.Render("["+f.label+"]"),
	)
}

// Values returns the current name and ingredients text.
func (f *Form) Values() (name, ingredients string) {
	return f.name.Value(), f.ingredients.Value()
}

// SetValues replaces the contents of both fields.
func (f *Form) SetValues(name, ingredients string) {
	f.name.SetValue(name)
	f.ingredients.SetValue(ingredients)
}

// Reset clears both fields.
func (f *Form) Reset() {
	f.name.Reset()
	f.ingredients.Reset()
}

// SetLabel sets the submit label.
func (f *Form) SetLabel(label string) {
	f.label = label
}

// Label returns the submit label.
func (f *Form) Label() string {
	return f.label
}

// FocusField focuses the given field.
func (f *Form) FocusField(field Field) tea.Cmd {
	f.focus = field
	return f.Focus()
}

// Focus gives focus to the current field.
func (f *Form) Focus() tea.Cmd {
	f.focused = true
	if f.focus == FieldName {
		f.ingredients.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.ingredients.Focus()
}

// Blur removes focus from both fields.
func (f *Form) Blur() {
	f.focused = false
	f.name.Blur()
	f.ingredients.Blur()
}

// Focused returns whether the form has focus.
func (f *Form) Focused() bool {
	return f.focused
}

// FocusedField returns the field that receives input.
func (f *Form) FocusedField() Field {
	return f.focus
}

// SetWidth sets the width of both fields.
func (f *Form) SetWidth(width int) {
	f.width = width
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	f.name.Width = inner
	f.ingredients.SetWidth(inner)
}

// Width returns the current width.
func (f *Form) Width() int {
	return f.width
}

package domain

// FormMode is the mode of the recipe form.
type FormMode int

const (
	// FormCreating submits new recipes. This is the default mode.
	FormCreating FormMode = iota
	// FormEditing submits changes to an existing recipe.
	FormEditing
)

// String returns the string representation of the form mode.
func (m FormMode) String() string {
	switch m {
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// FormState is the transient state of the create/edit form.
type FormState struct {
	// Mode is Creating unless an edit is in progress.
	Mode FormMode

	// EditID is the ID of the recipe being edited. Empty in Creating mode.
	EditID string

	// Name and Ingredients mirror the form inputs.
	Name        string
	Ingredients string
}

// Editing returns true if the form targets an existing recipe.
func (f FormState) Editing() bool {
	return f.Mode == FormEditing
}

// SubmitLabel returns the label of the form's submit action.
func (f FormState) SubmitLabel() string {
	if f.Editing() {
		return "Update Recipe"
	}
	return "Add Recipe"
}

// BookState is a point-in-time copy of the recipe book.
type BookState struct {
	// Recipes is the local mirror of the remote collection, in display order.
	Recipes []Recipe

	// Form is the current form state.
	Form FormState

	// LoadErr is set when the initial list failed.
	LoadErr error

	// Busy is true while a mutation is in flight.
	Busy bool
}

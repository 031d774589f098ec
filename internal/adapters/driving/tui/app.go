package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/views/recipes"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	recipesView *recipes.View
	helpView    *help.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error reported through ErrorOccurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		recipesView: recipes.NewView(s, km, ports.Book),
		helpView:    help.NewView(s, km),
		currentView: messages.ViewRecipes,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.recipesView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
// It enters the alternate screen and starts the initial load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Recipe Book"),
		a.recipesView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewHelp:
			a.helpView, cmd = a.helpView.Update(msg)
		default:
			a.recipesView, cmd = a.recipesView.Update(msg)
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Results of recipe book commands go to the recipes view
	// even while help is showing.
	a.recipesView, cmd = a.recipesView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.helpView.View()
	}
	return a.recipesView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	if a.err != nil {
		return a.err
	}
	return a.recipesView.Err()
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.recipesView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, height)
}

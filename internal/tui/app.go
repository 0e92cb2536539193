package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/filter-files/internal/config"
)

// AppModel is the top-level model wrapping the browsing screen
type AppModel struct {
	config  *config.Config
	current tea.Model
	width   int
	height  int
}

// NewAppModel creates a new app model
func NewAppModel(cfg *config.Config) *AppModel {
	return &AppModel{
		config:  cfg,
		current: NewModel(cfg),
	}
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.current
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.current.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = windowMsg.Width
		a.height = windowMsg.Height
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)

	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return a.current.View()
}

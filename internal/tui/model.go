// Package tui provides the interactive metadata browser.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/filter-files/internal/config"
	"github.com/joe/filter-files/internal/filterengine"
	"github.com/joe/filter-files/internal/tui/shared"
	"github.com/joe/filter-files/internal/tui/widgets"
	"github.com/joe/filter-files/pkg/provider"
)

// Filter field indices. Focus cycles through these with tab/shift+tab.
const (
	fieldPattern = iota
	fieldCreatedFrom
	fieldCreatedTo
	fieldModifiedFrom
	fieldModifiedTo
	fieldAccessedFrom
	fieldAccessedTo
	numFields
)

const (
	patternCharLimit = 256
	dateCharLimit    = 10
	dateInputWidth   = 12
)

// Model represents the TUI state
type Model struct {
	// Configuration
	config *config.Config
	engine *filterengine.Engine

	// Filter inputs, indexed by the field constants
	inputs     []textinput.Model
	focusIndex int

	// Root change mode (ctrl+o)
	changingRoot    bool
	rootInput       textinput.Model
	completions     []string
	completionIndex int
	showCompletions bool

	// Scan state
	scan      *filterengine.ScanResult
	visible   []provider.Record
	filterErr string
	scanStart time.Time
	elapsed   time.Duration

	// Display
	results  widgets.ResultsTable
	spinner  spinner.Model
	width    int
	height   int
	state    string // shared.StateScanning, StateBrowsing, StateError
	err      error
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(cfg *config.Config) Model {
	inputs := make([]textinput.Model, numFields)
	labels := initialValues(cfg)

	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		input.SetValue(labels[i])

		if i == fieldPattern {
			input.Placeholder = "regex, e.g. report|\\.pdf$"
			input.CharLimit = patternCharLimit
		} else {
			input.Placeholder = "YYYY-MM-DD"
			input.CharLimit = dateCharLimit
			input.Width = dateInputWidth
		}

		inputs[i] = input
	}
	inputs[fieldPattern].Focus()

	rootInput := textinput.New()
	rootInput.Placeholder = "/path/to/root or sftp://user@host/path"
	rootInput.Prompt = shared.PromptArrow
	rootInput.CharLimit = patternCharLimit

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	engine := filterengine.NewEngine()
	engine.Kind = cfg.Provider
	engine.Excludes = cfg.Excludes

	return Model{
		config:    cfg,
		engine:    engine,
		inputs:    inputs,
		rootInput: rootInput,
		spinner:   s,
		results:   widgets.NewResultsTable(),
		state:     shared.StateScanning,
		scanStart: time.Now(),
	}
}

// initialValues maps the config flags onto the filter fields.
func initialValues(cfg *config.Config) [numFields]string {
	return [numFields]string{
		fieldPattern:      cfg.Pattern,
		fieldCreatedFrom:  cfg.CreatedFrom,
		fieldCreatedTo:    cfg.CreatedTo,
		fieldModifiedFrom: cfg.ModifiedFrom,
		fieldModifiedTo:   cfg.ModifiedTo,
		fieldAccessedFrom: cfg.AccessedFrom,
		fieldAccessedTo:   cfg.AccessedTo,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.config.LogPath != "" {
		// Logging failures are not fatal; the scan proceeds without a log
		_ = m.engine.EnableFileLogging(m.config.LogPath)
	}

	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		shared.TickCmd(),
		m.startScan(m.config.RootPath),
	)
}

// startScan runs the enumeration off the UI loop.
func (m Model) startScan(root string) tea.Cmd {
	engine := m.engine

	return func() tea.Msg {
		result, err := engine.Scan(root)
		if err != nil {
			return shared.ScanFailedMsg{Root: root, Err: err}
		}

		return shared.ScanCompleteMsg{Result: result}
	}
}

// filterInput gathers the current field values.
func (m Model) filterInput() filterengine.Input {
	return filterengine.Input{
		Pattern:      m.inputs[fieldPattern].Value(),
		CreatedFrom:  m.inputs[fieldCreatedFrom].Value(),
		CreatedTo:    m.inputs[fieldCreatedTo].Value(),
		ModifiedFrom: m.inputs[fieldModifiedFrom].Value(),
		ModifiedTo:   m.inputs[fieldModifiedTo].Value(),
		AccessedFrom: m.inputs[fieldAccessedFrom].Value(),
		AccessedTo:   m.inputs[fieldAccessedTo].Value(),
	}
}

// applyFilter re-evaluates the current filter over the captured scan.
// Invalid input leaves the previous result set on screen and reports the
// problem inline.
func (m Model) applyFilter() Model {
	if m.scan == nil {
		return m
	}

	spec, err := m.filterInput().Spec()
	if err != nil {
		m.filterErr = err.Error()
		return m
	}

	filtered, err := filterengine.Apply(m.scan.Records, spec)
	if err != nil {
		m.filterErr = err.Error()
		return m
	}

	m.filterErr = ""
	m.visible = filtered
	m.results.SetRecords(filtered)

	return m
}

// clearFilter resets every filter field and shows the full scan again.
func (m Model) clearFilter() Model {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}

	return m.applyFilter()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.resize()

		return m, nil

	case shared.TickMsg:
		if m.state == shared.StateScanning {
			m.elapsed = time.Since(m.scanStart)
		}

		return m, shared.TickCmd()

	case shared.ScanCompleteMsg:
		m.state = shared.StateBrowsing
		m.scan = msg.Result
		m.err = nil
		m = m.applyFilter()

		return m, nil

	case shared.ScanFailedMsg:
		m.state = shared.StateError
		m.err = msg.Err

		return m, nil

	case shared.ErrorMsg:
		m.state = shared.StateError
		m.err = msg.Err

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keys by state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == shared.KeyCtrlC {
		m.quitting = true
		m.engine.CloseLog()

		return m, tea.Quit
	}

	if m.changingRoot {
		return m.handleRootKey(msg)
	}

	switch m.state {
	case shared.StateScanning:
		// Only quit keys work while scanning
		return m, nil

	case shared.StateError:
		switch msg.String() {
		case "q", "esc", "enter":
			m.quitting = true
			m.engine.CloseLog()

			return m, tea.Quit
		case "ctrl+r":
			return m.rescan(m.config.RootPath)
		case "ctrl+o":
			return m.enterRootMode()
		}

		return m, nil

	default:
		return m.handleBrowsingKey(msg)
	}
}

// handleBrowsingKey handles keys in the main filter-and-browse state.
func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		m.engine.CloseLog()

		return m, tea.Quit

	case "tab":
		return m.cycleFocus(1), nil

	case "shift+tab":
		return m.cycleFocus(-1), nil

	case "enter":
		m = m.applyFilter()
		return m, nil

	case "ctrl+l":
		m = m.clearFilter()
		return m, nil

	case "ctrl+r":
		return m.rescan(m.scan.Root)

	case "ctrl+o":
		return m.enterRootMode()

	case "up", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)

		return m, cmd
	}

	// Everything else edits the focused field
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)

	return m, cmd
}

// cycleFocus moves focus between filter fields.
func (m Model) cycleFocus(delta int) Model {
	m.inputs[m.focusIndex].Blur()

	m.focusIndex = (m.focusIndex + delta + numFields) % numFields
	m.inputs[m.focusIndex].Focus()

	return m
}

// rescan re-enumerates the given root, replacing the captured scan.
func (m Model) rescan(root string) (tea.Model, tea.Cmd) {
	m.state = shared.StateScanning
	m.scanStart = time.Now()
	m.elapsed = 0
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.startScan(root))
}

// enterRootMode switches to the root-entry prompt.
func (m Model) enterRootMode() (tea.Model, tea.Cmd) {
	m.changingRoot = true
	m.showCompletions = false

	current := m.config.RootPath
	if m.scan != nil {
		current = m.scan.Root
	}
	m.rootInput.SetValue(current)
	m.rootInput.CursorEnd()
	m.rootInput.Focus()

	m.inputs[m.focusIndex].Blur()

	return m, textinput.Blink
}

// handleRootKey handles keys while entering a new root.
func (m Model) handleRootKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.changingRoot = false
		m.rootInput.Blur()
		m.inputs[m.focusIndex].Focus()

		return m, nil

	case "tab":
		m = m.handleTabCompletion()
		return m, nil

	case "shift+tab":
		m = m.handleShiftTabCompletion()
		return m, nil

	case "right":
		m = m.handleRightArrow()
		return m, nil

	case "enter":
		m.showCompletions = false

		root := m.rootInput.Value()
		if root == "" {
			return m, nil
		}

		cfg := config.Config{RootPath: root}
		if err := cfg.ValidateRoot(); err != nil {
			m.filterErr = err.Error()
			return m, nil
		}

		m.changingRoot = false
		m.filterErr = ""
		m.rootInput.Blur()
		m.inputs[m.focusIndex].Focus()
		m.config.RootPath = root

		return m.rescan(root)

	default:
		m.showCompletions = false
	}

	var cmd tea.Cmd
	m.rootInput, cmd = m.rootInput.Update(msg)

	return m, cmd
}

// handleTabCompletion handles tab key for path completion
func (m Model) handleTabCompletion() Model {
	if !m.showCompletions {
		m.completions = dirCompletions(m.rootInput.Value())
		m.completionIndex = 0
		m.showCompletions = true
	} else if len(m.completions) > 0 {
		// Cycle forward through completions
		m.completionIndex = (m.completionIndex + 1) % len(m.completions)
	}

	return m.applyCompletion()
}

// handleShiftTabCompletion handles shift+tab for backward completion cycling
func (m Model) handleShiftTabCompletion() Model {
	if !m.showCompletions || len(m.completions) == 0 {
		return m
	}

	m.completionIndex--
	if m.completionIndex < 0 {
		m.completionIndex = len(m.completions) - 1
	}

	return m.applyCompletion()
}

// handleRightArrow accepts the current completion and descends a segment.
func (m Model) handleRightArrow() Model {
	if !m.showCompletions || len(m.completions) == 0 {
		m.showCompletions = false
		return m
	}

	current := m.completions[m.completionIndex]
	m.rootInput.SetValue(current)
	m.rootInput.CursorEnd()

	m.completions = dirCompletions(current)
	m.completionIndex = 0
	m.showCompletions = len(m.completions) > 0

	return m.applyCompletion()
}

// applyCompletion writes the selected completion into the root input.
func (m Model) applyCompletion() Model {
	if len(m.completions) == 0 {
		return m
	}

	m.rootInput.SetValue(m.completions[m.completionIndex])
	m.rootInput.CursorEnd()

	if len(m.completions) == 1 {
		m.showCompletions = false
	}

	return m
}

// resize propagates the window size to the inputs and the table.
func (m Model) resize() Model {
	inputWidth := m.width - 2*shared.DefaultPadding - 12
	if inputWidth < shared.MinInputWidth {
		inputWidth = shared.MinInputWidth
	}
	if inputWidth > shared.MaxInputWidth {
		inputWidth = shared.MaxInputWidth
	}

	m.inputs[fieldPattern].Width = inputWidth
	m.rootInput.Width = inputWidth

	tableHeight := m.height - filterAreaRows
	if tableHeight < minTableHeight {
		tableHeight = minTableHeight
	}
	m.results.SetSize(m.width-2*shared.DefaultPadding, tableHeight)

	return m
}

// Vertical space reserved above the table for the title and filter fields.
const (
	filterAreaRows = 12
	minTableHeight = 7
)

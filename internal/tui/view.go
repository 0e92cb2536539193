package tui

import (
	"strings"

	"github.com/joe/filter-files/internal/tui/shared"
)

// Completion display limit; longer lists show a count instead.
const maxCompletionsShown = 8

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case shared.StateScanning:
		return m.renderScanningView()
	case shared.StateError:
		return m.renderErrorView()
	case shared.StateBrowsing:
		return m.renderBrowsingView()
	default:
		return "Unknown state"
	}
}

func (m Model) renderScanningView() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle("🔍 Scanning"))
	b.WriteString("\n\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(shared.RenderLabel(shared.TruncatePath(m.config.RootPath, m.width-10)))
	b.WriteString("\n\n")

	b.WriteString(shared.RenderDim("Collecting file metadata (" + shared.FormatDuration(m.elapsed) + ")"))
	b.WriteString("\n")

	return shared.RenderBox(b.String())
}

func (m Model) renderErrorView() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle("Scan Failed"))
	b.WriteString("\n")

	b.WriteString(shared.RenderScanError(m.err, m.config.RootPath, m.width-10))
	b.WriteString("\n")

	b.WriteString(shared.RenderDim("ctrl+r retry · ctrl+o change root · q quit"))
	b.WriteString("\n")

	return shared.RenderBox(b.String())
}

func (m Model) renderBrowsingView() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle("📁 " + shared.TruncatePath(m.scanRoot(), m.width-6)))
	b.WriteString("\n")

	if m.changingRoot {
		b.WriteString(m.renderRootPrompt())
	} else {
		b.WriteString(m.renderFilterFields())
	}

	if m.filterErr != "" {
		b.WriteString(shared.RenderError(m.filterErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.results.View())
	b.WriteString("\n")

	b.WriteString(shared.SuccessStyle().Render(shared.FormatCount(len(m.visible), m.scan.Count())))
	b.WriteString("\n")

	b.WriteString(shared.RenderDim(
		"tab next field · enter apply · ctrl+l clear · ctrl+r rescan · ctrl+o change root · esc quit"))
	b.WriteString("\n")

	return b.String()
}

// scanRoot returns the root of the current result set.
func (m Model) scanRoot() string {
	if m.scan != nil {
		return m.scan.Root
	}

	return m.config.RootPath
}

// renderFilterFields lays out the pattern row and the three date range rows.
func (m Model) renderFilterFields() string {
	var b strings.Builder

	b.WriteString(shared.RenderLabel("Pattern  "))
	b.WriteString(m.inputs[fieldPattern].View())
	b.WriteString("\n")

	ranges := []struct {
		label    string
		from, to int
	}{
		{"Created  ", fieldCreatedFrom, fieldCreatedTo},
		{"Modified ", fieldModifiedFrom, fieldModifiedTo},
		{"Accessed ", fieldAccessedFrom, fieldAccessedTo},
	}

	for _, r := range ranges {
		b.WriteString(shared.RenderLabel(r.label))
		b.WriteString(m.inputs[r.from].View())
		b.WriteString(shared.RenderDim(" to "))
		b.WriteString(m.inputs[r.to].View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderRootPrompt shows the root entry field and its completions.
func (m Model) renderRootPrompt() string {
	var b strings.Builder

	b.WriteString(shared.RenderLabel("New root"))
	b.WriteString("\n")
	b.WriteString(m.rootInput.View())
	b.WriteString("\n")

	if m.showCompletions && len(m.completions) > 0 {
		b.WriteString(m.renderCompletions())
	}

	b.WriteString(shared.RenderDim("tab complete · enter scan · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderCompletions() string {
	var b strings.Builder

	shown := m.completions
	if len(shown) > maxCompletionsShown {
		shown = shown[:maxCompletionsShown]
	}

	for i, completion := range shown {
		display := shared.TruncatePath(completion, m.width-6)
		if i == m.completionIndex {
			b.WriteString(shared.CompletionSelectedStyle().Render("  " + display))
		} else {
			b.WriteString(shared.CompletionStyle().Render("  " + display))
		}
		b.WriteString("\n")
	}

	if remaining := len(m.completions) - len(shown); remaining > 0 {
		b.WriteString(shared.RenderDim("  …and more"))
		b.WriteString("\n")
	}

	return b.String()
}

// Package widgets provides reusable TUI components.
package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/filter-files/internal/tui/shared"
	"github.com/joe/filter-files/pkg/formatters"
	"github.com/joe/filter-files/pkg/provider"
)

// Column widths for the fixed metadata columns. The name and path columns
// share whatever width remains.
const (
	sizeColWidth = 10
	timeColWidth = 19
	minNameWidth = 16
	minPathWidth = 20
)

// ResultsTable displays filtered records in a scrollable table.
type ResultsTable struct {
	table table.Model
	width int
}

// NewResultsTable creates an empty results table.
func NewResultsTable() ResultsTable {
	t := table.New(
		table.WithColumns(columnsForWidth(80)),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(shared.AccentColor()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(shared.HighlightColor()).
		Bold(true)
	t.SetStyles(styles)

	return ResultsTable{table: t, width: 80}
}

// SetRecords replaces the table contents with the given records.
// The cursor resets to the top since the rows no longer correspond.
func (r *ResultsTable) SetRecords(records []provider.Record) {
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, table.Row{
			record.Name(),
			formatters.FormatBytes(record.Size, record.IsDir),
			formatters.FormatTime(record.Created),
			formatters.FormatTime(record.Modified),
			formatters.FormatTime(record.Accessed),
			record.FullPath,
		})
	}

	r.table.SetRows(rows)
	r.table.GotoTop()
}

// SetSize resizes the table to fit the given area.
func (r *ResultsTable) SetSize(width, height int) {
	r.width = width
	r.table.SetColumns(columnsForWidth(width))
	r.table.SetWidth(width)

	rows := height - shared.TableChromeRows
	if rows < 3 {
		rows = 3
	}
	r.table.SetHeight(rows)
}

// SelectedPath returns the full path of the highlighted row, or empty when
// the table has no rows.
func (r ResultsTable) SelectedPath() string {
	row := r.table.SelectedRow()
	if row == nil {
		return ""
	}

	return row[len(row)-1]
}

// RowCount returns the number of rows currently displayed.
func (r ResultsTable) RowCount() int {
	return len(r.table.Rows())
}

// Update forwards navigation keys to the underlying table.
func (r ResultsTable) Update(msg tea.Msg) (ResultsTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)

	return r, cmd
}

// View renders the table.
func (r ResultsTable) View() string {
	return r.table.View()
}

// columnsForWidth splits the available width across the six columns.
func columnsForWidth(width int) []table.Column {
	fixed := sizeColWidth + 3*timeColWidth
	flexible := width - fixed - 12 // cell padding
	if flexible < minNameWidth+minPathWidth {
		flexible = minNameWidth + minPathWidth
	}

	nameWidth := flexible / 3
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	pathWidth := flexible - nameWidth
	if pathWidth < minPathWidth {
		pathWidth = minPathWidth
	}

	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: sizeColWidth},
		{Title: "Created", Width: timeColWidth},
		{Title: "Modified", Width: timeColWidth},
		{Title: "Accessed", Width: timeColWidth},
		{Title: "Path", Width: pathWidth},
	}
}

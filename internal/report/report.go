// Package report renders scan results as a plain table for non-interactive use.
package report

import (
	"fmt"
	"io"

	"github.com/rodaine/table"

	"github.com/joe/filter-files/internal/filterengine"
	"github.com/joe/filter-files/internal/tui/shared"
	"github.com/joe/filter-files/pkg/formatters"
	"github.com/joe/filter-files/pkg/provider"
)

// Write prints the filtered records as a table followed by the result count.
// Output is plain text suitable for pipes and files.
func Write(w io.Writer, result *filterengine.ScanResult, filtered []provider.Record) {
	tbl := table.New("Name", "Size", "Created", "Modified", "Accessed", "Path").
		WithWriter(w)

	for _, record := range filtered {
		tbl.AddRow(
			record.Name(),
			formatters.FormatBytes(record.Size, record.IsDir),
			formatters.FormatTime(record.Created),
			formatters.FormatTime(record.Modified),
			formatters.FormatTime(record.Accessed),
			record.FullPath,
		)
	}

	tbl.Print()
	fmt.Fprintln(w, shared.FormatCount(len(filtered), result.Count()))
}

// Run scans the root, applies the filter, and writes the table.
// This is the whole non-interactive path.
func Run(w io.Writer, engine *filterengine.Engine, root string, input filterengine.Input) error {
	spec, err := input.Spec()
	if err != nil {
		return err
	}

	// Validate the pattern before the scan so bad input fails fast
	filter, err := filterengine.Compile(spec)
	if err != nil {
		return err
	}

	result, err := engine.Scan(root)
	if err != nil {
		return err
	}

	Write(w, result, filter.Apply(result.Records))

	return nil
}

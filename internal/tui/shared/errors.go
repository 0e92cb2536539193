package shared

import (
	"fmt"
	"strings"

	"github.com/joe/filter-files/pkg/errors"
)

// RenderScanError renders a scan failure with actionable suggestions.
// The error message is truncated to maxWidth; suggestions wrap underneath.
func RenderScanError(err error, root string, maxWidth int) string {
	if err == nil {
		return ""
	}

	enricher := errors.NewEnricher()
	enriched := enricher.Enrich(err, root)

	var builder strings.Builder

	errMsg := enriched.Error()
	if maxWidth > 0 && len(errMsg) > maxWidth {
		errMsg = errMsg[:maxWidth-3] + "..."
	}
	fmt.Fprintf(&builder, "%s\n", RenderError("✗ "+errMsg))

	suggestions := errors.FormatSuggestions(enriched)
	if suggestions != "" {
		builder.WriteString("\n")
		builder.WriteString(RenderDim("Try these solutions:"))
		builder.WriteString("\n")
		builder.WriteString(suggestions)
		builder.WriteString("\n")
	}

	return builder.String()
}

package shared_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filter-files/internal/tui/shared"
)

func TestRenderScanErrorNil(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.RenderScanError(nil, "/root", 80)).Should(BeEmpty())
}

func TestRenderScanErrorShowsSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := errors.New("lstat /data: permission denied")

	rendered := shared.RenderScanError(err, "/data", 80)

	g.Expect(rendered).Should(ContainSubstring("permission denied"))
	g.Expect(rendered).Should(ContainSubstring("•"))
	g.Expect(rendered).Should(ContainSubstring("Try these solutions"))
}

func TestRenderScanErrorTruncatesLongMessages(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := errors.New("scan of /some/very/long/path/that/keeps/going/and/going failed with an unusually verbose explanation")

	rendered := shared.RenderScanError(err, "", 40)

	g.Expect(rendered).Should(ContainSubstring("..."))
}

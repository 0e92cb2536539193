//nolint:varnamelen // Test files use idiomatic short variable names (g, w, etc.)
package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filter-files/internal/filterengine"
	"github.com/joe/filter-files/internal/report"
	"github.com/joe/filter-files/pkg/provider"
)

func reportRecords() []provider.Record {
	return []provider.Record{
		{
			FullPath: "/data/alpha.txt",
			Modified: time.Date(2022, time.March, 1, 12, 0, 0, 0, time.Local),
			Size:     10,
		},
		{
			FullPath: "/data/beta.log",
			Modified: time.Date(2022, time.June, 15, 12, 0, 0, 0, time.Local),
			Size:     2048,
		},
	}
}

func mockEngine(records []provider.Record) *filterengine.Engine {
	engine := filterengine.NewEngine()
	engine.NewScanner = func(string, provider.Options) (provider.Scanner, func(), error) {
		return provider.NewMockScanner(records...), nil, nil
	}

	return engine
}

func TestWriteRendersTableWithCount(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	records := reportRecords()
	result := &filterengine.ScanResult{Root: "/data", Records: records}

	var w bytes.Buffer
	report.Write(&w, result, records[:1])

	out := w.String()
	g.Expect(out).To(ContainSubstring("Name"))
	g.Expect(out).To(ContainSubstring("alpha.txt"))
	g.Expect(out).NotTo(ContainSubstring("beta.log"))
	g.Expect(out).To(ContainSubstring("Results: 1 of 2"))
}

func TestRunFiltersAndPrints(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var w bytes.Buffer
	err := report.Run(&w, mockEngine(reportRecords()), "/data", filterengine.Input{Pattern: "alpha"})

	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(w.String()).To(ContainSubstring("alpha.txt"))
	g.Expect(w.String()).To(ContainSubstring("Results: 1 of 2"))
}

func TestRunEmptyFilterShowsEverything(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var w bytes.Buffer
	err := report.Run(&w, mockEngine(reportRecords()), "/data", filterengine.Input{})

	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(w.String()).To(ContainSubstring("Results: 2 of 2"))
}

func TestRunRejectsBadInputBeforeScanning(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanned := false
	engine := filterengine.NewEngine()
	engine.NewScanner = func(string, provider.Options) (provider.Scanner, func(), error) {
		scanned = true
		return provider.NewMockScanner(), nil, nil
	}

	var w bytes.Buffer

	err := report.Run(&w, engine, "/data", filterengine.Input{Pattern: "["})
	g.Expect(errors.Is(err, filterengine.ErrInvalidPattern)).To(BeTrue())

	err = report.Run(&w, engine, "/data", filterengine.Input{CreatedFrom: "not-a-date"})
	g.Expect(err).Should(HaveOccurred())

	g.Expect(scanned).To(BeFalse(), "bad input should fail before any scan")
}

func TestRunSurfacesScanErrors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanErr := errors.New("permission denied")
	engine := filterengine.NewEngine()
	engine.NewScanner = func(string, provider.Options) (provider.Scanner, func(), error) {
		return provider.NewFailingScanner(scanErr), nil, nil
	}

	var w bytes.Buffer
	err := report.Run(&w, engine, "/data", filterengine.Input{})

	g.Expect(err).Should(MatchError(scanErr))
}

package filterengine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/joe/filter-files/pkg/provider"
)

// ScanResult is one completed enumeration: the root it was taken from and the
// records captured at that moment. A fresh scan replaces the whole result;
// records are never updated in place.
type ScanResult struct {
	Root    string
	Records []provider.Record
}

// Count returns the total number of records in the result.
func (r *ScanResult) Count() int {
	if r == nil {
		return 0
	}

	return len(r.Records)
}

// Engine drives the metadata provider and applies the fallback strategy when
// the native shell enumeration fails. It carries no state between scans.
type Engine struct {
	// Kind selects the local enumeration mechanism (auto by default)
	Kind provider.Kind

	// Excludes are globs pruned during enumeration
	Excludes []string

	// NewScanner creates provider scanners (for dependency injection)
	NewScanner func(root string, opts provider.Options) (provider.Scanner, func(), error)

	logger *zap.Logger
}

// NewEngine creates a scan engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		NewScanner: provider.CreateScanner,
		logger:     zap.NewNop(),
	}
}

// EnableFileLogging routes engine diagnostics to the given file.
// The TUI owns the terminal, so logs never go to stdout or stderr.
func (e *Engine) EnableFileLogging(logPath string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", logPath, err)
	}

	e.logger = logger

	return nil
}

// CloseLog flushes and detaches the log file. Safe to call when no log is
// open, and safe to call more than once.
func (e *Engine) CloseLog() {
	_ = e.logger.Sync()
	e.logger = zap.NewNop()
}

// Scan enumerates the root and returns the captured records.
// When the native shell enumeration fails, the scan falls back to the direct
// walk before giving up; the failure is logged, not surfaced. Errors from the
// last-resort mechanism are returned so the caller can report an empty result
// with a diagnostic.
func (e *Engine) Scan(root string) (*ScanResult, error) {
	resolved := provider.ResolveKind(root, e.Kind)

	records, err := e.scanOnce(root, e.Kind)
	if err != nil && resolved == provider.KindShell {
		e.logger.Warn("shell enumeration failed, falling back to direct walk",
			zap.String("root", root),
			zap.Error(err))

		records, err = e.scanOnce(root, provider.KindWalk)
	}

	if err != nil {
		return nil, err
	}

	e.logger.Info("scan complete",
		zap.String("root", root),
		zap.Int("records", len(records)))

	return &ScanResult{Root: root, Records: records}, nil
}

// scanOnce drains a single scanner into a record slice.
func (e *Engine) scanOnce(root string, kind provider.Kind) ([]provider.Record, error) {
	scanner, closer, err := e.NewScanner(root, provider.Options{
		Kind:     kind,
		Excludes: e.Excludes,
		Logger:   e.logger,
	})
	if err != nil {
		return nil, err
	}

	if closer != nil {
		defer closer()
	}

	records := make([]provider.Record, 0)
	for {
		record, ok := scanner.Next()
		if !ok {
			break
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

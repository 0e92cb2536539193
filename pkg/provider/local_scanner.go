package provider

import (
	"fmt"
	"path/filepath"

	"github.com/kr/fs"
	"go.uber.org/zap"
)

// localScanner implements Scanner by walking a local directory tree.
type localScanner struct {
	root     string
	excludes []string
	logger   *zap.Logger
	records  []Record
	index    int
	err      error
	scanned  bool
}

// newLocalScanner creates a new scanner for the given local directory.
// The root must already be absolute.
func newLocalScanner(root string, excludes []string, logger *zap.Logger) *localScanner {
	return &localScanner{
		root:     root,
		excludes: excludes,
		logger:   logger,
		records:  make([]Record, 0),
		index:    -1,
	}
}

// Next advances to the next record and returns it.
func (s *localScanner) Next() (Record, bool) {
	// Scan on first call
	if !s.scanned {
		s.scan()
		s.scanned = true
	}

	if s.err != nil {
		return Record{}, false
	}

	s.index++
	if s.index >= len(s.records) {
		return Record{}, false
	}

	return s.records[s.index], true
}

// Err returns any error that occurred during scanning.
func (s *localScanner) Err() error {
	return s.err
}

// scan walks the directory tree and collects all entries.
// Inaccessible entries are skipped; only a failure on the root itself aborts.
func (s *localScanner) scan() {
	walker := fs.Walk(s.root)

	for walker.Step() {
		if err := walker.Err(); err != nil {
			if walker.Path() == s.root {
				s.err = fmt.Errorf("cannot enumerate %s: %w", s.root, err)
				return
			}

			s.logger.Debug("skipping inaccessible entry",
				zap.String("path", walker.Path()),
				zap.Error(err))
			continue
		}

		path := walker.Path()

		// Skip the root directory itself
		if path == s.root {
			continue
		}

		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			s.logger.Debug("skipping entry outside root",
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		info := walker.Stat()

		if excluded(filepath.ToSlash(relPath), s.excludes) {
			if info.IsDir() {
				walker.SkipDir()
			}
			continue
		}

		created, accessed := extraTimes(info)

		s.records = append(s.records, Record{
			FullPath: path,
			Created:  created,
			Modified: info.ModTime(),
			Accessed: accessed,
			Size:     info.Size(),
			IsDir:    info.IsDir(),
		})
	}
}

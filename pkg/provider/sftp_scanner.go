package provider

import (
	"fmt"
	"path"
	"time"

	"github.com/pkg/sftp"
	"go.uber.org/zap"
)

// sftpScanner implements Scanner for remote directories over SFTP.
type sftpScanner struct {
	client   *sftp.Client
	root     string
	excludes []string
	logger   *zap.Logger
	records  []Record
	index    int
	err      error
	scanned  bool
}

// newSFTPScanner creates a new scanner for the given remote directory.
func newSFTPScanner(client *sftp.Client, root string, excludes []string, logger *zap.Logger) *sftpScanner {
	return &sftpScanner{
		client:   client,
		root:     root,
		excludes: excludes,
		logger:   logger,
		records:  make([]Record, 0),
		index:    -1,
	}
}

// Next advances to the next record and returns it.
func (s *sftpScanner) Next() (Record, bool) {
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
func (s *sftpScanner) Err() error {
	return s.err
}

// scan walks the remote directory tree and collects all entries.
// Unreadable entries are skipped; only a failure on the root itself aborts.
func (s *sftpScanner) scan() {
	walker := s.client.Walk(s.root)

	for walker.Step() {
		if err := walker.Err(); err != nil {
			if walker.Path() == s.root {
				s.err = fmt.Errorf("cannot enumerate %s: %w", s.root, err)
				return
			}

			s.logger.Debug("skipping inaccessible remote entry",
				zap.String("path", walker.Path()),
				zap.Error(err))
			continue
		}

		fullPath := walker.Path()

		// Skip the root directory itself
		if fullPath == s.root {
			continue
		}

		relPath, err := remoteRelativePath(s.root, fullPath)
		if err != nil {
			s.logger.Debug("skipping remote entry outside root",
				zap.String("path", fullPath),
				zap.Error(err))
			continue
		}

		info := walker.Stat()

		if excluded(relPath, s.excludes) {
			if info.IsDir() {
				walker.SkipDir()
			}
			continue
		}

		// SFTP stat carries modification and access times only; creation
		// time stays unknown.
		var accessed time.Time
		if stat, ok := info.Sys().(*sftp.FileStat); ok {
			accessed = time.Unix(int64(stat.Atime), 0)
		}

		s.records = append(s.records, Record{
			FullPath: fullPath,
			Modified: info.ModTime(),
			Accessed: accessed,
			Size:     info.Size(),
			IsDir:    info.IsDir(),
		})
	}
}

// remoteRelativePath computes the relative path from root to target.
// Uses the path package (not filepath) since SFTP always uses forward slashes.
func remoteRelativePath(root, target string) (string, error) {
	root = path.Clean(root)
	target = path.Clean(target)

	if root != "/" && root[len(root)-1] != '/' {
		root += "/"
	}

	if len(target) < len(root) || target[:len(root)] != root {
		return "", fmt.Errorf("target %s is not under root %s", target, root)
	}

	relPath := target[len(root):]
	if relPath == "" {
		return ".", nil
	}

	return relPath, nil
}

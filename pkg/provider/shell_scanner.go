package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// psCommandTemplate asks PowerShell for the same attribute set the walk
// scanner collects, with timestamps pre-formatted as ISO 8601 so the JSON
// carries strings instead of /Date(ms)/ tokens. Older hosts may still emit
// the token form, which parseShellTime also accepts.
const psCommandTemplate = `Get-ChildItem -LiteralPath '%s' -Recurse -Force -ErrorAction SilentlyContinue | ` +
	`Select-Object FullName, ` +
	`@{n='CreationTime';e={$_.CreationTime.ToString('o')}}, ` +
	`@{n='LastWriteTime';e={$_.LastWriteTime.ToString('o')}}, ` +
	`@{n='LastAccessTime';e={$_.LastAccessTime.ToString('o')}}, ` +
	`Length, PSIsContainer | ConvertTo-Json -Depth 3`

// shellRunner produces the raw JSON output of the enumeration command.
// Injectable for testing.
type shellRunner func(root string) ([]byte, error)

// shellScanner implements Scanner using a native PowerShell enumeration call.
type shellScanner struct {
	root     string
	excludes []string
	logger   *zap.Logger
	runner   shellRunner
	records  []Record
	index    int
	err      error
	scanned  bool
}

// shellEntry mirrors one object of the PowerShell JSON output.
type shellEntry struct {
	FullName       string `json:"FullName"`
	CreationTime   string `json:"CreationTime"`
	LastWriteTime  string `json:"LastWriteTime"`
	LastAccessTime string `json:"LastAccessTime"`
	Length         *int64 `json:"Length"`
	PSIsContainer  bool   `json:"PSIsContainer"`
}

// newShellScanner creates a new scanner backed by PowerShell enumeration.
// The root must already be absolute.
func newShellScanner(root string, excludes []string, logger *zap.Logger) *shellScanner {
	return &shellScanner{
		root:     root,
		excludes: excludes,
		logger:   logger,
		runner:   runPowerShell,
		records:  make([]Record, 0),
		index:    -1,
	}
}

// Next advances to the next record and returns it.
func (s *shellScanner) Next() (Record, bool) {
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
func (s *shellScanner) Err() error {
	return s.err
}

// scan runs the enumeration command and parses its JSON output.
func (s *shellScanner) scan() {
	output, err := s.runner(s.root)
	if err != nil {
		s.err = fmt.Errorf("powershell enumeration of %s failed: %w", s.root, err)
		return
	}

	entries, err := parseShellOutput(output)
	if err != nil {
		s.err = fmt.Errorf("cannot parse powershell output: %w", err)
		return
	}

	for _, entry := range entries {
		if entry.FullName == "" {
			continue
		}

		relPath, err := filepath.Rel(s.root, entry.FullName)
		if err != nil {
			s.logger.Debug("skipping entry outside root",
				zap.String("path", entry.FullName),
				zap.Error(err))
			continue
		}

		if excluded(filepath.ToSlash(relPath), s.excludes) {
			continue
		}

		record := Record{
			FullPath: entry.FullName,
			Created:  parseShellTime(entry.CreationTime),
			Modified: parseShellTime(entry.LastWriteTime),
			Accessed: parseShellTime(entry.LastAccessTime),
			IsDir:    entry.PSIsContainer || entry.Length == nil,
		}
		if entry.Length != nil {
			record.Size = *entry.Length
		}

		s.records = append(s.records, record)
	}
}

// parseShellOutput decodes the command output, which is a JSON array for
// multiple entries but a bare object when the root holds exactly one.
func parseShellOutput(output []byte) ([]shellEntry, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var single shellEntry
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, err
		}

		return []shellEntry{single}, nil
	}

	var entries []shellEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// parseShellTime parses the timestamp formats PowerShell is known to emit:
// ISO 8601 round-trip strings, second-precision local timestamps, and the
// legacy /Date(milliseconds)/ token. Returns the zero time when nothing fits.
func parseShellTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local); err == nil {
		return t
	}

	if strings.HasPrefix(value, `/Date(`) && strings.HasSuffix(value, `)/`) {
		millis := strings.TrimSuffix(strings.TrimPrefix(value, `/Date(`), `)/`)
		if ms, err := strconv.ParseInt(millis, 10, 64); err == nil {
			return time.UnixMilli(ms)
		}
	}

	return time.Time{}
}

// runPowerShell executes the enumeration command against the real shell.
func runPowerShell(root string) ([]byte, error) {
	// Single quotes in PowerShell literals are escaped by doubling
	quoted := strings.ReplaceAll(root, `'`, `''`)
	command := fmt.Sprintf(psCommandTemplate, quoted)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// shellAvailable reports whether a PowerShell binary is on PATH.
func shellAvailable() bool {
	_, err := exec.LookPath("powershell")
	return err == nil
}

package provider

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Kind selects the enumeration mechanism for local roots.
type Kind int

const (
	// KindAuto picks the best available mechanism for the platform
	KindAuto Kind = iota
	// KindWalk walks the directory tree directly
	KindWalk
	// KindShell enumerates through a native PowerShell call
	KindShell
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindWalk:
		return "walk"
	case KindShell:
		return "shell"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return KindAuto, nil
	case "walk", "direct":
		return KindWalk, nil
	case "shell", "powershell":
		return KindShell, nil
	default:
		return KindAuto, fmt.Errorf("invalid provider kind: %s (valid: auto, walk, shell)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Options configures scanner creation.
type Options struct {
	// Kind selects the local enumeration mechanism. Remote roots always
	// use SFTP regardless of Kind.
	Kind Kind

	// Excludes are doublestar globs pruned during enumeration, matched
	// case-insensitively against the slash-path relative to the root.
	Excludes []string

	// Logger receives skipped-entry diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// ResolveKind reports which local mechanism CreateScanner would pick for the
// given root and requested kind. Remote roots resolve to KindAuto since the
// kind does not apply to them.
func ResolveKind(root string, kind Kind) Kind {
	if parsed, err := ParseRoot(root); err == nil && parsed.IsRemote {
		return KindAuto
	}

	switch kind {
	case KindWalk, KindShell:
		return kind
	default:
		if runtime.GOOS == "windows" && shellAvailable() {
			return KindShell
		}
		return KindWalk
	}
}

// CreateScanner creates a Scanner for the given root.
// Returns (scanner, closer, error); the closer releases any connection held
// by the scanner (SFTP) and is nil for local roots.
// The mechanism is a capability decision made here, once, at creation:
// sftp:// roots scan remotely, Windows hosts with PowerShell available use
// the native shell call, everything else walks the tree directly.
func CreateScanner(root string, opts Options) (Scanner, func(), error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := ParseRoot(root)
	if err != nil {
		return nil, nil, err
	}

	if parsed.IsRemote {
		conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
				parsed.User, parsed.Host, parsed.Port, err)
		}

		closer := func() {
			_ = conn.Close()
		}

		return newSFTPScanner(conn.Client(), parsed.Path, opts.Excludes, logger), closer, nil
	}

	absRoot, err := filepath.Abs(parsed.LocalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot resolve root %s: %w", parsed.LocalPath, err)
	}

	switch opts.Kind {
	case KindWalk:
		return newLocalScanner(absRoot, opts.Excludes, logger), nil, nil
	case KindShell:
		if !shellAvailable() {
			return nil, nil, fmt.Errorf("powershell is not available on this system")
		}
		return newShellScanner(absRoot, opts.Excludes, logger), nil, nil
	default:
		if runtime.GOOS == "windows" && shellAvailable() {
			return newShellScanner(absRoot, opts.Excludes, logger), nil, nil
		}
		return newLocalScanner(absRoot, opts.Excludes, logger), nil, nil
	}
}

package provider

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const defaultSFTPPort = 22

// ParsedRoot represents either a local root path or an SFTP URL.
type ParsedRoot struct {
	IsRemote bool

	// For local roots
	LocalPath string

	// For SFTP roots
	Host string
	Port int
	User string
	Path string // Remote path
}

// ParseRoot parses a root string, detecting whether it's a local path or an
// SFTP URL of the form sftp://user@host:port/path/to/dir (port optional).
// Examples:
//   - sftp://joe@myserver.com/home/joe/data
//   - sftp://joe@myserver.com:2222/archive
//   - /local/path/to/files (local root)
func ParseRoot(root string) (*ParsedRoot, error) {
	if strings.HasPrefix(root, "sftp://") {
		return parseSFTPURL(root)
	}

	return &ParsedRoot{
		IsRemote:  false,
		LocalPath: root,
	}, nil
}

// parseSFTPURL parses an SFTP URL into its components.
func parseSFTPURL(sftpURL string) (*ParsedRoot, error) {
	parsed, err := url.Parse(sftpURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if parsed.Scheme != "sftp" {
		return nil, fmt.Errorf("expected sftp:// scheme, got %s://", parsed.Scheme)
	}

	if parsed.User == nil || parsed.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)")
	}
	user := parsed.User.Username()

	host := parsed.Hostname()
	if host == "" {
		return nil, fmt.Errorf("SFTP URL must include host")
	}

	port := defaultSFTPPort
	if portStr := parsed.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
		port = p
	}

	// SFTP path convention:
	//   sftp://user@host/path  → relative to home directory (strip leading /)
	//   sftp://user@host//path → absolute path /path (strip one /)
	//   sftp://user@host       → home directory (.)
	remotePath := parsed.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &ParsedRoot{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     user,
		Path:     remotePath,
	}, nil
}

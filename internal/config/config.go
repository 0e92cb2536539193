// Package config handles application configuration: command-line argument
// parsing, optional YAML defaults, and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"gopkg.in/yaml.v3"

	"github.com/joe/filter-files/internal/filterengine"
	"github.com/joe/filter-files/pkg/provider"
)

// Config holds the application configuration
type Config struct {
	RootPath     string        `arg:"-r,--root" help:"Root to scan: local directory or sftp://user@host[:port]/path"`
	Pattern      string        `arg:"-p,--pattern" help:"Initial name filter (case-insensitive regular expression)"`
	CreatedFrom  string        `arg:"--created-from" placeholder:"DATE" help:"Creation date lower bound (YYYY-MM-DD)"`
	CreatedTo    string        `arg:"--created-to" placeholder:"DATE" help:"Creation date upper bound (YYYY-MM-DD)"`
	ModifiedFrom string        `arg:"--modified-from" placeholder:"DATE" help:"Modification date lower bound (YYYY-MM-DD)"`
	ModifiedTo   string        `arg:"--modified-to" placeholder:"DATE" help:"Modification date upper bound (YYYY-MM-DD)"`
	AccessedFrom string        `arg:"--accessed-from" placeholder:"DATE" help:"Access date lower bound (YYYY-MM-DD)"`
	AccessedTo   string        `arg:"--accessed-to" placeholder:"DATE" help:"Access date upper bound (YYYY-MM-DD)"`
	Excludes     []string      `arg:"--exclude,separate" help:"Glob pruned during the scan (repeatable)"`
	Provider     provider.Kind `arg:"--provider" help:"Enumeration mechanism: auto|walk|shell"`
	Plain        bool          `arg:"--plain" help:"Print the filtered table to stdout and exit (no TUI)"`
	LogPath      string        `arg:"--log" help:"Debug log file (disabled when empty)"`
	ConfigPath   string        `arg:"--config" help:"YAML file supplying defaults for root, excludes, provider, and log"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Browse and filter file metadata by name pattern and date ranges in a Terminal UI"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "filter-files 1.0.0"
}

// fileConfig is the YAML shape of the optional defaults file.
type fileConfig struct {
	Root     string   `yaml:"root"`
	Excludes []string `yaml:"excludes"`
	Provider string   `yaml:"provider"`
	Log      string   `yaml:"log"`
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies file defaults and validation to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if err := applyFileDefaults(cfg); err != nil {
		return nil, err
	}

	// The root defaults to the working directory so the tool is usable
	// with no flags at all.
	if cfg.RootPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve working directory: %w", err)
		}
		cfg.RootPath = cwd
	}

	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateDates(); err != nil {
		return nil, err
	}

	if err := provider.ValidateExcludes(cfg.Excludes); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FilterInput returns the initial filter inputs taken from the flags.
func (cfg *Config) FilterInput() filterengine.Input {
	return filterengine.Input{
		Pattern:      cfg.Pattern,
		CreatedFrom:  cfg.CreatedFrom,
		CreatedTo:    cfg.CreatedTo,
		ModifiedFrom: cfg.ModifiedFrom,
		ModifiedTo:   cfg.ModifiedTo,
		AccessedFrom: cfg.AccessedFrom,
		AccessedTo:   cfg.AccessedTo,
	}
}

// applyFileDefaults merges the YAML defaults file into unset fields.
// An explicitly named file must exist; the default location may be absent.
func applyFileDefaults(cfg *Config) error {
	path := cfg.ConfigPath
	explicit := path != ""

	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil //nolint:nilerr // No home directory simply means no defaults file
		}
		path = filepath.Join(home, ".filter-files.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("cannot read config file: %w", err)
		}
		return nil //nolint:nilerr // The default defaults file is optional
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", path, err)
	}

	if cfg.RootPath == "" {
		cfg.RootPath = fileCfg.Root
	}
	if len(cfg.Excludes) == 0 {
		cfg.Excludes = fileCfg.Excludes
	}
	if cfg.Provider == provider.KindAuto && fileCfg.Provider != "" {
		kind, err := provider.ParseKind(fileCfg.Provider)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Provider = kind
	}
	if cfg.LogPath == "" {
		cfg.LogPath = fileCfg.Log
	}

	return nil
}

// ValidateRoot validates that the configured root is usable: a well-formed
// SFTP URL, or an existing local directory.
func (cfg *Config) ValidateRoot() error {
	parsed, err := provider.ParseRoot(cfg.RootPath)
	if err != nil {
		return err
	}

	// Remote roots are only verified at connection time
	if parsed.IsRemote {
		return nil
	}

	info, err := os.Stat(parsed.LocalPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s", parsed.LocalPath)
	}
	if err != nil {
		return fmt.Errorf("cannot access root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", parsed.LocalPath)
	}

	return nil
}

// ValidateDates checks every date flag against the accepted YYYY-MM-DD form.
func (cfg *Config) ValidateDates() error {
	_, err := cfg.FilterInput().Spec()
	return err
}

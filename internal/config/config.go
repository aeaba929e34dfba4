// Package config resolves cmdward's on-disk configuration directory and
// loads its default ValidationOptions from YAML. The catalog itself is
// compiled into the binary and is never configured here — this is
// default-options surface only, not a rule-authoring one.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir = ".cmdward"
	DefaultOptsFile  = "options.yaml"
	DefaultLogFile   = "audit.jsonl"
)

// fileOptions is the on-disk shape of options.yaml. Every field is
// optional; a missing file or missing field falls back to the matching
// default below.
type fileOptions struct {
	Severities    []string `yaml:"severities"`
	DenyPatterns  []string `yaml:"deny_patterns"`
	ChallengeType string   `yaml:"challenge_type"`
	PropagateEnv  []string `yaml:"propagate_env"`
}

// Config is cmdward's resolved runtime configuration: where to find its
// state directory and audit log, and the default options read from
// options.yaml. The validate, approve and run commands do not apply
// Severities, DenyPatterns, ChallengeType or PropagateEnv: they take
// their options from their own flags and pass no deny patterns. Only
// status reads these fields, to print them.
type Config struct {
	ConfigDir     string
	LogPath       string
	Severities    []string
	DenyPatterns  []string
	ChallengeType string
	PropagateEnv  []string
}

// defaultSeverities matches the CLI surface's documented default of
// "critical,high,medium" (low-severity matches are allowed through
// silently unless the caller widens the allow-list).
var defaultSeverities = []string{"critical", "high", "medium"}

const defaultChallengeType = "confirm"

// Load resolves ~/.cmdward, creating it if necessary, then overlays
// ~/.cmdward/options.yaml (if present) on top of the built-in defaults.
// logPathOverride, when non-empty, wins over both the default and any
// configured log path.
func Load(logPathOverride string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir:     configDir,
		LogPath:       filepath.Join(configDir, DefaultLogFile),
		Severities:    append([]string(nil), defaultSeverities...),
		ChallengeType: defaultChallengeType,
	}

	optsPath := filepath.Join(configDir, DefaultOptsFile)
	if data, err := os.ReadFile(optsPath); err == nil {
		var opts fileOptions
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, err
		}
		applyFileOptions(cfg, opts)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if logPathOverride != "" {
		cfg.LogPath = logPathOverride
	}

	return cfg, nil
}

func applyFileOptions(cfg *Config, opts fileOptions) {
	if len(opts.Severities) > 0 {
		cfg.Severities = opts.Severities
	}
	if len(opts.DenyPatterns) > 0 {
		cfg.DenyPatterns = opts.DenyPatterns
	}
	if opts.ChallengeType != "" {
		cfg.ChallengeType = opts.ChallengeType
	}
	if len(opts.PropagateEnv) > 0 {
		cfg.PropagateEnv = opts.PropagateEnv
	}
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}

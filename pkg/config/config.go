// Package config loads the layered runtime configuration: embedded TOML
// defaults, an optional manvet.toml, then MANVET_* environment overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"manvet/pkg/errors"
)

// Config holds the resolved runtime configuration for a command invocation.
type Config struct {
	Repo struct {
		Path    string `koanf:"path" toml:"path"`
		Pattern string `koanf:"pattern" toml:"pattern"`
	} `koanf:"repo" toml:"repo"`
	Database struct {
		Path string `koanf:"path" toml:"path"`
	} `koanf:"database" toml:"database"`
	Man struct {
		Root string `koanf:"root" toml:"root"`
	} `koanf:"man" toml:"man"`
	Fetch struct {
		Workers int `koanf:"workers" toml:"workers"`
	} `koanf:"fetch" toml:"fetch"`
}

// Load assembles configuration from three layers: embedded defaults, an
// optional manvet.toml / .manvet.toml in the root directory, and MANVET_*
// environment variables. Later layers win.
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if root == "" {
		root = os.Getenv("MANVET_ROOT")
	}
	if root == "" {
		root = "."
	}

	for _, filename := range []string{".manvet.toml", "manvet.toml"} {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			break
		}
	}

	// MANVET_REPO_PATH=... maps onto repo.path and so on.
	if err := k.Load(env.Provider("MANVET_", ".", envKeyReplacer), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Fetch.Workers < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "fetch.workers must be at least 1, got %d", cfg.Fetch.Workers)
	}

	return &cfg, nil
}

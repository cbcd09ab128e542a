package config

import (
	_ "embed"
	"errors"
	"strings"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded default configuration, suitable
// for writing out as a starter manvet.toml.
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// envKeyReplacer turns MANVET_REPO_PATH into repo.path
func envKeyReplacer(s string) string {
	s = strings.TrimPrefix(s, "MANVET_")
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

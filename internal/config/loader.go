package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads and parses the YAML configuration file at path.
// An empty path searches the default locations; if no file is found
// anywhere, a File with defaults is returned without error. An explicit
// path that does not exist is an error.
func LoadConfigFile(path string) (*File, error) {
	resolved, err := FindConfigFile(path)
	if err != nil {
		return nil, err
	}
	if resolved == "" {
		return NewFile(), nil
	}

	data, err := os.ReadFile(resolved) //nolint:gosec // path comes from the user's own flag or well-known locations
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", resolved, err)
	}

	file := NewFile()
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", resolved, err)
	}
	if file.Providers == nil {
		file.Providers = map[string]ProviderConfig{}
	}
	return file, nil
}

// FindConfigFile resolves the configuration file location.
//
// Search order:
//  1. The explicit path, when given. Missing is an error.
//  2. .fineprint.yml in the current directory.
//  3. .fineprint.yml in the XDG config directory.
//
// An empty return path with a nil error means no file exists and
// defaults should be used.
func FindConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return path, nil
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}

	xdgPath := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath, nil
	}

	return "", nil
}

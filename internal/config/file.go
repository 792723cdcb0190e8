package config

import "time"

// DefaultConfigFile is the configuration file name searched for in the
// current directory and in the XDG config directory.
const DefaultConfigFile = ".fineprint.yml"

// File is the YAML configuration file format. All fields are optional;
// a missing file or an empty file yields defaults everywhere.
type File struct {
	// Providers maps a provider role name (condense, reframe, polish)
	// to its endpoint configuration. Roles not listed are simply skipped
	// by the summary chain.
	Providers map[string]ProviderConfig `yaml:"providers"`

	// AutoSurfaceReports controls whether scan results that found
	// something are printed automatically. Defaults to true when unset.
	AutoSurfaceReports *bool `yaml:"auto_surface_reports"`
}

// ProviderConfig describes one summary provider endpoint.
type ProviderConfig struct {
	// Endpoint is the HTTP URL the provider listens on. Required.
	Endpoint string `yaml:"endpoint"`

	// Token is an optional bearer token sent with each request.
	Token string `yaml:"token"`

	// TimeoutSeconds overrides the default provider timeout for this
	// provider. Zero means use the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// NewFile returns a File with no providers configured.
func NewFile() *File {
	return &File{Providers: map[string]ProviderConfig{}}
}

// AutoSurface reports whether scan results should be surfaced
// automatically. Unset means true.
func (f *File) AutoSurface() bool {
	if f == nil || f.AutoSurfaceReports == nil {
		return true
	}
	return *f.AutoSurfaceReports
}

// Timeout returns the provider timeout to use, falling back to def when
// no override is configured.
func (p ProviderConfig) Timeout(def time.Duration) time.Duration {
	if p.TimeoutSeconds <= 0 {
		return def
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

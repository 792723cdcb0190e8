// Package config holds all configuration options for fineprint.
//
// Configuration flows one way: CLI flags and the optional .fineprint.yml
// file populate a Config, Validate() checks it once up front, and the
// validated struct travels through the application by dependency injection.
// There is no global configuration state.
package config

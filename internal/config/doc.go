// Package config loads the application settings.
//
// Settings come from HELLO_-prefixed environment variables, matched
// case-insensitively, overlaid on an optional .env file and the defaults.
// The result is validated once and never mutated afterwards.
package config

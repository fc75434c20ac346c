// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with non-zero-value precedence: values parsed first win
// over later sources. After merging, safe defaults are applied and the final
// configuration is validated before the application starts.
package config

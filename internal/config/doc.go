// Package config provides configuration structures and utilities for persist.
// It defines the output format, indentation and color settings, and loads
// them from an optional YAML file.
package config

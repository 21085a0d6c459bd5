package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can match them with errors.Is.
var (
	// ErrInvalidFormat is returned when the output format is unknown.
	ErrInvalidFormat = errors.New("invalid format: must be one of text, json, yaml, markdown")

	// ErrInvalidIndent is returned when the indent width is out of range.
	ErrInvalidIndent = errors.New("invalid indent: must be between 1 and 16")

	// ErrInvalidColorMode is returned when the color mode is unknown.
	ErrInvalidColorMode = errors.New("invalid color mode: must be one of auto, always, never")
)

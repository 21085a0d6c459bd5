package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Format selects how parsed reports are rendered.
type Format string

// Supported output formats.
const (
	// FormatText is an indented, optionally colorized dump in the style of
	// Ruby's awesome_print.
	FormatText Format = "text"

	// FormatJSON re-indents the reports as JSON.
	FormatJSON Format = "json"

	// FormatYAML renders the reports as YAML.
	FormatYAML Format = "yaml"

	// FormatMarkdown renders a Markdown document with fenced code blocks.
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ColorMode controls ANSI colors in the text format.
type ColorMode string

// Supported color modes.
const (
	// ColorAuto enables colors only when standard output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colors, e.g. when piping into `less -R`.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// Default configuration values.
const (
	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = FormatText

	// DefaultIndent matches awesome_print's default of four spaces.
	DefaultIndent = 4

	// MinIndent and MaxIndent bound the indent width.
	MinIndent = 1
	MaxIndent = 16

	// DefaultColorMode is the color mode used when none is configured.
	DefaultColorMode = ColorAuto

	// AppName is the application name used for XDG directory paths.
	AppName = "persist"
)

// Config holds all options that shape a dump.
// It is populated from defaults, the optional config file and CLI flags,
// in that order, and passed down explicitly rather than kept in globals.
type Config struct {
	// Format is the output format for parsed reports.
	Format Format

	// Indent is the number of spaces per nesting level.
	Indent int

	// Color controls ANSI colors in the text format.
	Color ColorMode

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is the explicit config file path given by the user.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Indent: DefaultIndent,
		Color:  DefaultColorMode,
	}
}

// Apply copies every non-zero value of the config file over c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Indent != 0 {
		c.Indent = f.Indent
	}
	if f.Color != "" {
		c.Color = f.Color
	}
}

// XDGConfigDir returns the XDG config directory for persist.
// On Linux: ~/.config/persist
// On macOS: ~/Library/Application Support/persist
// On Windows: %LOCALAPPDATA%\persist
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !c.Format.IsValid() {
		return ErrInvalidFormat
	}

	if c.Indent < MinIndent || c.Indent > MaxIndent {
		return ErrInvalidIndent
	}

	if !c.Color.IsValid() {
		return ErrInvalidColorMode
	}

	return nil
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// IsValid reports whether m is a supported color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

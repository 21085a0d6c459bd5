package report

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/sushengloong/maestro-spike/internal/config"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// ColorEnabled resolves a color mode against the actual output.
// In auto mode colors are enabled only when output is a terminal.
func ColorEnabled(mode config.ColorMode, output io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := output.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

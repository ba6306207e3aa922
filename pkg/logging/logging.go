// Package logging provides the structured logging facility used throughout
// taggu: a nil-safe, prefixed logger with warning/error helpers colorized via
// fatih/color, with color automatically disabled on non-terminal output.
package logging

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

// DebugEnabled controls whether Logger.Debug* calls actually emit output. It
// is off by default and is typically toggled by a CLI flag or environment
// variable at program startup.
var DebugEnabled = false

func init() {
	// Set the global logger to use standard output.
	log.SetOutput(os.Stdout)

	// Disable color output if standard error isn't a terminal, since ANSI
	// escapes in redirected output (files, pipes, CI logs) are just noise.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		disableColor()
	}
}

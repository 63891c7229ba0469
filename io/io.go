// Package argio bundles the diagnostics stream and logger used by the argq
// front-end.
package argio

import (
	stdio "io"
	"os"
)

// IOManager centralizes the diagnostics stream and color support
type IOManager struct {
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stderr
func New() *IOManager {
	return &IOManager{err: os.Stderr}
}

// WithErr sets the diagnostics writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// Err returns the diagnostics writer
func (m *IOManager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether ANSI colors should be emitted on Err.
// NO_COLOR wins over auto-detection; explicit ForceColor/NoColor win over both.
func (m *IOManager) SupportsColor() bool {
	if m.forceColor {
		return true
	}
	if m.noColor {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isTerminal(m.err)
}

// isTerminal reports whether w is a character device such as a tty
func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

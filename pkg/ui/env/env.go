// Package env reports the rendering context widgets run in.
package env

import (
	"os"

	"golang.org/x/term"
)

// Probe reports whether output is being rendered without an interactive
// terminal (a static "backend" render).
type Probe interface {
	IsBackend() bool
}

// Static is a Probe with a fixed answer.
type Static bool

func (s Static) IsBackend() bool { return bool(s) }

// terminal treats any non-TTY output as a backend render.
type terminal struct {
	f *os.File
}

// Terminal returns a Probe for f.
func Terminal(f *os.File) Probe {
	return terminal{f: f}
}

func (t terminal) IsBackend() bool {
	if t.f == nil {
		return true
	}
	return !term.IsTerminal(int(t.f.Fd()))
}

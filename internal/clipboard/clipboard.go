// Package clipboard copies text to the system clipboard via OSC 52 terminal escapes.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Copier is a write-only clipboard sink.
type Copier interface {
	Copy(text string) error
}

// Terminal writes OSC 52 sequences to a terminal, which sets the clipboard
// of the machine the terminal runs on, including over SSH.
type Terminal struct {
	out io.Writer
	env func(string) string
}

// New returns a Terminal writing to out.
func New(out io.Writer) *Terminal {
	return &Terminal{out: out, env: os.Getenv}
}

// Copy sends text to the clipboard, wrapping the sequence for tmux or screen
// when running inside one of them.
func (t *Terminal) Copy(text string) error {
	seq := osc52.New(text)

	switch {
	case t.env("TMUX") != "":
		seq = seq.Tmux()
	case t.env("STY") != "":
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(t.out); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}

	return nil
}

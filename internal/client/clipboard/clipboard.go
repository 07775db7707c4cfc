// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable means the text could not be placed on the clipboard and
// the caller should offer another way to get at it.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// System uses the platform clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct {
	write       func(string) error
	unsupported func() bool
}

// NewSystem returns a Copier backed by the platform clipboard.
func NewSystem() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy writes text. Every failure wraps ErrUnavailable.
func (s *System) Copy(text string) error {
	if s.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Memory keeps the last copied text. It stands in for the system clipboard
// in tests and headless sessions.
type Memory struct {
	Text string
	Err  error
}

// Copy records text, or returns m.Err wrapped in ErrUnavailable.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, m.Err)
	}
	m.Text = text
	return nil
}

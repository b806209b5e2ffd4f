// Package clipboard delivers the quote text to a clipboard.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard is available.
var ErrUnsupported = errors.New("system clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// System writes to the host clipboard (xclip/xsel/wl-copy, pbcopy or the
// Windows API).
type System struct{}

// NewSystem returns the host clipboard writer.
func NewSystem() System {
	return System{}
}

// WriteText copies text to the host clipboard.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Discard is used when clipboard delivery is disabled. It always fails with
// ErrUnsupported so callers report the copy as not delivered.
type Discard struct{}

// WriteText implements Writer.
func (Discard) WriteText(context.Context, string) error {
	return ErrUnsupported
}

// Memory keeps the last written text. It backs tests and headless setups.
type Memory struct {
	mu   sync.Mutex
	text string
}

// WriteText implements Writer.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

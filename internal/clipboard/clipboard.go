// Package clipboard copies generated queries to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

func (system) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

type disabled struct{}

func (disabled) WriteAll(string) error {
	return fmt.Errorf("%w: disabled by configuration", ErrUnavailable)
}

// System returns the OS clipboard (xclip/xsel/wl-copy, pbcopy, or the
// Windows API).
func System() Writer { return system{} }

// Disabled returns a Writer that always fails.
func Disabled() Writer { return disabled{} }

// Copy writes text through w. An empty text is a no-op and reports
// copied=false without error.
func Copy(w Writer, text string) (copied bool, err error) {
	if text == "" {
		return false, nil
	}
	if err := w.WriteAll(text); err != nil {
		return false, fmt.Errorf("copy to clipboard: %w", err)
	}
	return true, nil
}

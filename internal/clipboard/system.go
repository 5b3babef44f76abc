package clipboard

import (
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/zjrosen/textmenu/internal/log"
)

// ErrNoSystemClipboard means no clipboard utility (xclip, xsel,
// wl-clipboard, pbcopy) was found.
var ErrNoSystemClipboard = errors.New("no system clipboard utility found")

// System uses the OS clipboard. Inside SSH, tmux or screen sessions copies
// are sent as an OSC 52 escape instead, so they reach the local terminal.
type System struct {
	osc52 bool
	out   io.Writer

	// last is the most recent OSC 52 copy. The terminal cannot be read
	// back, so Paste falls back to it.
	last *Memory
}

// NewSystem returns a System clipboard. OSC 52 is chosen from the
// environment at construction.
func NewSystem() *System {
	return &System{
		osc52: shouldUseOSC52(),
		out:   os.Stderr,
		last:  NewMemory(),
	}
}

// Copy writes text to the clipboard.
func (s *System) Copy(text string) error {
	if s.osc52 {
		_ = s.last.Copy(text)
		_, err := osc52Sequence(text).WriteTo(s.out)
		return err
	}
	if clipboard.Unsupported {
		return ErrNoSystemClipboard
	}
	return clipboard.WriteAll(text)
}

// Paste reads the clipboard.
func (s *System) Paste() (string, error) {
	if clipboard.Unsupported {
		if s.osc52 {
			return s.last.Paste()
		}
		return "", ErrNoSystemClipboard
	}
	text, err := clipboard.ReadAll()
	if err != nil && s.osc52 {
		log.Debug(log.CatClipboard, "system read failed, using last osc52 copy", "error", err.Error())
		return s.last.Paste()
	}
	return text, err
}

// shouldUseOSC52 reports whether the process runs in a remote or
// multiplexed terminal.
func shouldUseOSC52() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// osc52Sequence builds the set-clipboard escape for text, wrapped in a DCS
// passthrough when running under tmux or GNU screen.
func osc52Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		return seq.Tmux()
	case os.Getenv("STY") != "":
		return seq.Screen()
	default:
		return seq
	}
}

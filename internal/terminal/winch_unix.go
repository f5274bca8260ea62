//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/dshills/terminput/internal/input/decoder"
)

// WatchResize sends a Resize event on out whenever the terminal size
// changes, for terminals that never emit "CSI 8 ; rows ; cols t". The
// current size is sent once on startup. Returns when ctx is cancelled.
func (s *Source) WatchResize(ctx context.Context, out chan<- decoder.Event) {
	if !s.IsTerminal() {
		return
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, unix.SIGWINCH)
	defer signal.Stop(winch)

	notify := func() {
		cols, rows, err := s.Size()
		if err != nil {
			return
		}
		ev := decoder.Event{Kind: decoder.KindResize, Rows: rows, Cols: cols}
		select {
		case out <- ev:
		case <-ctx.Done():
		}
	}

	notify()
	for {
		select {
		case <-ctx.Done():
			return
		case <-winch:
			notify()
		}
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/dshills/terminput/internal/config"
	"github.com/dshills/terminput/internal/input/decoder"
	"github.com/dshills/terminput/internal/replay"
	"github.com/dshills/terminput/internal/terminal"
)

// Terminal reporting mode sequences. Mouse reporting uses the SGR
// extension so coordinates are not clamped at 223.
const (
	mouseOn  = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	mouseOff = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"
	pasteOn  = "\x1b[?2004h"
	pasteOff = "\x1b[?2004l"
	focusOn  = "\x1b[?1004h"
	focusOff = "\x1b[?1004l"
)

// App runs one interactive input session.
type App struct {
	cfg    config.Config
	logger *Logger
	in     io.Reader
	out    io.Writer
}

// New creates an application reading raw input from in and printing
// decoded events to out.
func New(cfg config.Config, logger *Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = NullLogger
	}
	return &App{cfg: cfg, logger: logger, in: in, out: out}
}

// Run decodes input until EOF, context cancellation, or the quit key.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dec := decoder.New()
	if a.cfg.MaxPending > 0 {
		dec.SetMaxPending(a.cfg.MaxPending)
	}
	src := terminal.NewSource(a.in, dec, terminal.Options{
		EscTimeout: a.cfg.EscTimeout(),
	})

	eol := "\n"
	if src.IsTerminal() {
		if err := src.MakeRaw(); err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer func() {
			if err := src.Restore(); err != nil {
				a.logger.Error("restoring terminal: %v", err)
			}
		}()
		// Raw mode disables output post-processing.
		eol = "\r\n"

		a.setModes(true)
		defer a.setModes(false)
	}

	var transcript *replay.Writer
	if a.cfg.Transcript != "" {
		f, err := os.OpenFile(a.cfg.Transcript, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening transcript: %w", err)
		}
		defer f.Close()
		transcript = replay.NewWriter(f)
		a.logger.Info("recording transcript to %s", a.cfg.Transcript)
	}

	events := make(chan decoder.Event, 64)
	errc := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		errc <- src.Run(ctx, events)
	}()
	if src.IsTerminal() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src.WatchResize(ctx, events)
		}()
	}
	go func() {
		wg.Wait()
		close(events)
	}()

	quit, hasQuit := a.cfg.QuitEvent()
	for ev := range events {
		if ev.Kind == decoder.KindUnknown {
			a.logger.Warn("unrecognized input sequence %q", ev.Raw)
		}
		if transcript != nil {
			if err := transcript.Write(ev); err != nil {
				a.logger.Error("writing transcript: %v", err)
				transcript = nil
			}
		}
		if _, err := io.WriteString(a.out, a.describe(ev)+eol); err != nil {
			return err
		}
		if hasQuit && ev.Kind == decoder.KindKey && ev.Key.Equal(quit) {
			a.logger.Debug("quit key pressed")
			cancel()
			break
		}
	}

	err := <-errc
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Replay prints every event from a recorded transcript.
func (a *App) Replay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	r := replay.NewReader(f)
	for {
		ev, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(a.out, a.describe(ev)+"\n"); err != nil {
			return err
		}
	}
}

// setModes enables or disables the configured terminal reporting modes.
func (a *App) setModes(on bool) {
	var seq string
	if a.cfg.Mouse {
		seq += pick(on, mouseOn, mouseOff)
	}
	if a.cfg.BracketedPaste {
		seq += pick(on, pasteOn, pasteOff)
	}
	if a.cfg.FocusEvents {
		seq += pick(on, focusOn, focusOff)
	}
	if seq != "" {
		_, _ = io.WriteString(a.out, seq)
	}
}

func pick(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

// describe renders an event for display. Pastes are summarized rather
// than echoed: a paste can be megabytes, and its grapheme count is the
// useful fact.
func (a *App) describe(ev decoder.Event) string {
	if ev.Kind == decoder.KindPaste {
		graphemes := uniseg.GraphemeClusterCount(ev.Text)
		return fmt.Sprintf("paste %d graphemes (%d bytes)", graphemes, len(ev.Text))
	}
	return ev.String()
}

package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dshills/terminput/internal/input/decoder"
)

// Source errors
var (
	ErrNotTerminal = errors.New("input is not a terminal")
)

// DefaultEscTimeout is how long a lone ESC may sit in the decoder before
// it is flushed as an Escape keypress.
const DefaultEscTimeout = 50 * time.Millisecond

// defaultChunkSize is the read buffer size. Terminal input arrives in
// small bursts; 4 KiB comfortably covers large pastes per read.
const defaultChunkSize = 4096

// Options configures a Source.
type Options struct {
	// EscTimeout is the lone-ESC flush timeout. Zero means
	// DefaultEscTimeout; negative disables flushing.
	EscTimeout time.Duration

	// ChunkSize is the read buffer size. Zero means the default.
	ChunkSize int
}

// Source reads raw bytes from a terminal (or any reader) and feeds them to
// a decoder, delivering decoded events on a channel.
type Source struct {
	r   io.Reader
	f   *os.File // non-nil when r is a file (raw mode, size queries)
	dec *decoder.Decoder

	escTimeout time.Duration
	chunkSize  int

	oldState *term.State
}

// NewSource creates a byte source reading from r. If r is an *os.File the
// source can also manage raw mode and report sizes.
func NewSource(r io.Reader, dec *decoder.Decoder, opts Options) *Source {
	s := &Source{
		r:          r,
		dec:        dec,
		escTimeout: opts.EscTimeout,
		chunkSize:  opts.ChunkSize,
	}
	if f, ok := r.(*os.File); ok {
		s.f = f
	}
	if s.escTimeout == 0 {
		s.escTimeout = DefaultEscTimeout
	}
	if s.chunkSize <= 0 {
		s.chunkSize = defaultChunkSize
	}
	return s
}

// IsTerminal reports whether the source reads from an interactive terminal.
func (s *Source) IsTerminal() bool {
	return s.f != nil && term.IsTerminal(int(s.f.Fd()))
}

// MakeRaw puts the terminal into raw mode. Restore must be called before
// the process exits.
func (s *Source) MakeRaw() error {
	if !s.IsTerminal() {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(int(s.f.Fd()))
	if err != nil {
		return err
	}
	s.oldState = state
	return nil
}

// Restore returns the terminal to its pre-MakeRaw state.
func (s *Source) Restore() error {
	if s.oldState == nil {
		return nil
	}
	err := term.Restore(int(s.f.Fd()), s.oldState)
	s.oldState = nil
	return err
}

// Size returns the terminal dimensions.
func (s *Source) Size() (cols, rows int, err error) {
	if !s.IsTerminal() {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(int(s.f.Fd()))
}

// Run reads until EOF, read error, or context cancellation, sending every
// decoded event on out. All decoder access happens on this goroutine.
// A clean EOF returns nil.
func (s *Source) Run(ctx context.Context, out chan<- decoder.Event) error {
	chunks := make(chan []byte, 8)
	readErr := make(chan error, 1)
	go s.readLoop(ctx, chunks, readErr)

	flush := time.NewTimer(time.Hour)
	if !flush.Stop() {
		<-flush.C
	}
	defer flush.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chunk, open := <-chunks:
			if !open {
				// Reader finished; every chunk has been fed.
				if ev, ok := s.dec.FlushEscape(); ok {
					if err := s.send(ctx, out, ev); err != nil {
						return err
					}
				}
				err := <-readErr
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			s.dec.Feed(chunk)
			if err := s.deliver(ctx, out); err != nil {
				return err
			}
			s.armFlush(flush)

		case <-flush.C:
			if ev, ok := s.dec.FlushEscape(); ok {
				if err := s.send(ctx, out, ev); err != nil {
					return err
				}
			}
		}
	}
}

// armFlush starts the escape-flush timer when exactly a lone ESC is
// pending.
func (s *Source) armFlush(flush *time.Timer) {
	if !flush.Stop() {
		select {
		case <-flush.C:
		default:
		}
	}
	if s.escTimeout < 0 {
		return
	}
	if s.dec.Mode() == decoder.ModeEscape && s.dec.Pending() == 1 {
		flush.Reset(s.escTimeout)
	}
}

// deliver drains all complete events from the decoder.
func (s *Source) deliver(ctx context.Context, out chan<- decoder.Event) error {
	for {
		ev, ok := s.dec.Next()
		if !ok {
			return nil
		}
		if err := s.send(ctx, out, ev); err != nil {
			return err
		}
	}
}

func (s *Source) send(ctx context.Context, out chan<- decoder.Event, ev decoder.Event) error {
	select {
	case out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readLoop reads chunks from the underlying reader until error or
// cancellation.
func (s *Source) readLoop(ctx context.Context, chunks chan<- []byte, readErr chan<- error) {
	buf := make([]byte, s.chunkSize)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			readErr <- err
			close(chunks)
			return
		}
	}
}

// Package tui connects a game.Engine to a terminal: raw mode, a byte-wise
// read loop and ANSI rendering.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kanales/levdle/internal/game"
)

// Outcome summarises a finished session.
type Outcome struct {
	Won      bool
	Attempts int
	Secret   string
	Ended    bool // input closed before the game finished
}

// Session runs one game against an input stream.
type Session struct {
	ID string

	engine *game.Engine
	in     io.Reader
	render *Renderer
	raw    RawMode
	log    zerolog.Logger

	// exit is called after the terminal is restored on SIGINT/SIGTERM/SIGHUP.
	exit func(code int)
}

func NewSession(engine *game.Engine, in io.Reader, out io.Writer, raw RawMode) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		engine: engine,
		in:     in,
		render: NewRenderer(out, engine.MaxTries()),
		raw:    raw,
		log:    log.With().Str("session", id).Logger(),
		exit:   os.Exit,
	}
}

// Run plays until the engine finishes or input ends, then prints the
// summary. The terminal is restored before Run returns on every path.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	if err := s.play(ctx); err != nil {
		return Outcome{}, err
	}
	o := Outcome{
		Won:      s.engine.Won(),
		Attempts: s.engine.Attempts(),
		Secret:   s.engine.Secret(),
		Ended:    s.engine.Ended() && !s.engine.Finished(),
	}
	s.log.Info().Bool("won", o.Won).Int("attempts", o.Attempts).Bool("ended", o.Ended).Msg("session over")
	if err := s.render.Summary(o); err != nil {
		return o, fmt.Errorf("render: %w", err)
	}
	return o, nil
}

func (s *Session) play(ctx context.Context) error {
	restore, err := s.raw.Acquire()
	if err != nil {
		return err
	}
	defer restore()

	untrap := s.trapSignals(restore)
	defer untrap()

	stop := make(chan struct{})
	defer close(stop)
	input := s.readBytes(stop)

	s.log.Debug().Int("tries", s.engine.TriesRemaining()).Msg("session started")
	for !s.engine.Done() {
		var ev game.Event
		select {
		case <-ctx.Done():
			ev = s.engine.End()
		case b, ok := <-input:
			if !ok {
				ev = s.engine.End()
			} else {
				ev = s.engine.Feed(b)
			}
		}
		if ev.Kind != game.EventNone {
			s.log.Debug().Stringer("event", ev.Kind).Int("tries", ev.TriesRemaining).Msg("input")
		}
		if err := s.render.Event(ev); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// trapSignals restores the terminal and exits if the process is signalled
// while raw mode is held.
func (s *Session) trapSignals(restore func()) (stop func()) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case sig := <-sigc:
			restore()
			s.log.Warn().Str("signal", sig.String()).Msg("interrupted")
			s.exit(130)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigc)
		close(done)
	}
}

// readBytes feeds s.in one byte at a time into the returned channel, which
// is closed at end of input.
func (s *Session) readBytes(stop <-chan struct{}) <-chan byte {
	out := make(chan byte)
	go func() {
		defer close(out)
		var b [1]byte
		for {
			n, err := s.in.Read(b[:])
			if n == 1 {
				select {
				case out <- b[0]:
				case <-stop:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.log.Warn().Err(err).Msg("read input")
				}
				return
			}
		}
	}()
	return out
}

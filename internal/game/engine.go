// internal/game/engine.go
//
// Guess engine for a single daily session.
// Responsibilities:
//   - Turn raw input bytes into buffer edits, submits and end of input.
//   - Validate submitted guesses (length, dictionary membership).
//   - Score guesses by Levenshtein distance to the secret.
//   - Track state transitions: collecting → scored → … → finished (won/lost).
//
// Notes:
//   - The engine does no I/O. Every call returns one Event and the caller
//     decides how to show it.
//   - Invalid guesses are reported as EventRejected, never as errors.
package game

import (
	"strings"

	"github.com/kanales/levdle/internal/levenshtein"
	"github.com/kanales/levdle/internal/words"
)

// DefaultTries is the number of valid guesses per session.
const DefaultTries = 6

const (
	keyBackspace = 8
	keyDelete    = 127
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyEscape    = 27
)

// escape sequence parsing state
type escState int

const (
	escNone escState = iota
	escStart         // saw ESC
	escCSI           // saw ESC [, waiting for a final byte
	escSS3           // saw ESC O, waiting for one byte
)

// Engine is the input state machine. It is not safe for concurrent use.
type Engine struct {
	list   *words.List
	secret string

	maxTries int
	tries    int
	attempts int
	buf      []byte

	won      bool
	finished bool
	ended    bool
	scored   bool
	esc      escState
	afterCR  bool // last byte was '\r'
}

// Option configures an Engine.
type Option func(*Engine)

// WithTries overrides DefaultTries. Values below 1 are treated as 1.
func WithTries(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.maxTries = n
	}
}

// New creates an engine scoring guesses from list against secret.
func New(list *words.List, secret string, opts ...Option) *Engine {
	e := &Engine{
		list:     list,
		secret:   strings.ToUpper(secret),
		maxTries: DefaultTries,
		buf:      make([]byte, 0, words.Length),
	}
	for _, o := range opts {
		o(e)
	}
	e.tries = e.maxTries
	return e
}

// Classify maps a raw byte to an Input.
func Classify(b byte) Input {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return InputLetter
	case b == keyDelete, b == keyBackspace:
		return InputBackspace
	case b == '\r', b == '\n':
		return InputSubmit
	case b == keyCtrlC, b == keyCtrlD:
		return InputInterrupt
	case b == keyEscape:
		return InputEscape
	}
	return InputOther
}

// Feed processes one input byte.
func (e *Engine) Feed(b byte) Event {
	if e.finished || e.ended {
		return e.event(EventNone)
	}
	// CRLF is one submit.
	if b == '\n' && e.afterCR {
		e.afterCR = false
		return e.event(EventNone)
	}
	e.afterCR = b == '\r'
	e.scored = false

	switch e.esc {
	case escStart:
		switch b {
		case '[':
			e.esc = escCSI
			return e.event(EventNone)
		case 'O':
			e.esc = escSS3
			return e.event(EventNone)
		}
		// A lone ESC; handle b on its own.
		e.esc = escNone
	case escCSI:
		if b >= 0x40 && b <= 0x7e {
			e.esc = escNone
		}
		return e.event(EventNone)
	case escSS3:
		e.esc = escNone
		return e.event(EventNone)
	}

	switch Classify(b) {
	case InputLetter:
		return e.Type(b)
	case InputBackspace:
		return e.Backspace()
	case InputSubmit:
		return e.Submit()
	case InputInterrupt:
		return e.End()
	case InputEscape:
		e.esc = escStart
	}
	return e.event(EventNone)
}

// Type appends a letter if the buffer has room.
func (e *Engine) Type(b byte) Event {
	if e.finished || e.ended || Classify(b) != InputLetter || len(e.buf) >= words.Length {
		return e.event(EventNone)
	}
	e.scored = false
	if b >= 'a' {
		b -= 'a' - 'A'
	}
	e.buf = append(e.buf, b)
	return e.event(EventBufferUpdated)
}

// Backspace removes the last letter. An empty buffer is left alone.
func (e *Engine) Backspace() Event {
	if e.finished || e.ended || len(e.buf) == 0 {
		return e.event(EventNone)
	}
	e.scored = false
	e.buf = e.buf[:len(e.buf)-1]
	return e.event(EventBufferUpdated)
}

// Submit finalises the buffer as a guess.
func (e *Engine) Submit() Event {
	if e.finished || e.ended {
		return e.event(EventNone)
	}
	e.scored = false
	guess := string(e.buf)
	if len(e.buf) != words.Length || !e.list.Contains(guess) {
		return e.event(EventRejected)
	}

	e.attempts++
	d := levenshtein.Distance(guess, e.secret)
	switch {
	case d == 0:
		e.won, e.finished = true, true
		e.buf = e.buf[:0]
		ev := e.event(EventWon)
		ev.Buffer = guess
		return ev
	case e.tries == 1:
		// Out of tries: keep the final guess in the buffer.
		e.tries = 0
		e.finished = true
		ev := e.event(EventLost)
		ev.Distance = d
		return ev
	default:
		e.tries--
		e.buf = e.buf[:0]
		e.scored = true
		ev := e.event(EventScored)
		ev.Buffer = guess
		ev.Distance = d
		return ev
	}
}

// End marks the input as closed. The win/loss outcome is left as is.
func (e *Engine) End() Event {
	if e.ended {
		return e.event(EventNone)
	}
	e.ended = true
	return e.event(EventEnded)
}

func (e *Engine) event(k EventKind) Event {
	return Event{
		Kind:           k,
		Buffer:         string(e.buf),
		TriesRemaining: e.tries,
		Attempts:       e.attempts,
	}
}

// State reports the current state.
func (e *Engine) State() State {
	switch {
	case e.finished:
		return Finished
	case e.scored:
		return Scored
	case len(e.buf) == words.Length:
		return ReadyToSubmit
	}
	return Collecting
}

func (e *Engine) Buffer() string      { return string(e.buf) }
func (e *Engine) Secret() string      { return e.secret }
func (e *Engine) TriesRemaining() int { return e.tries }
func (e *Engine) MaxTries() int       { return e.maxTries }
func (e *Engine) Attempts() int       { return e.attempts }
func (e *Engine) Won() bool           { return e.won }
func (e *Engine) Finished() bool      { return e.finished }
func (e *Engine) Ended() bool         { return e.ended }

// Done reports whether the engine accepts no more input.
func (e *Engine) Done() bool { return e.finished || e.ended }

// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - State: where the engine is in a session.
//   - Input: classification of a single raw input byte.
//   - Event: the notification produced by every engine transition.

package game

// State of a session.
type State int

const (
	// Collecting: 0–4 letters in the buffer.
	Collecting State = iota
	// ReadyToSubmit: the buffer holds a full word.
	ReadyToSubmit
	// Scored: a guess was just scored and the buffer cleared. The next
	// input moves the engine back to Collecting.
	Scored
	// Finished: won or out of tries. Terminal.
	Finished
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case ReadyToSubmit:
		return "ready"
	case Scored:
		return "scored"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Input is the meaning of one raw byte.
type Input int

const (
	InputOther     Input = iota // ignored
	InputLetter                 // ASCII A–Z or a–z
	InputBackspace              // DEL (127) or BS (8)
	InputSubmit                 // CR or LF
	InputInterrupt              // Ctrl-C or Ctrl-D: end of input in raw mode
	InputEscape                 // ESC, may start a terminal escape sequence
)

// EventKind tells the presentation layer what happened.
type EventKind int

const (
	EventNone          EventKind = iota // nothing changed
	EventBufferUpdated                  // a letter was added or removed
	EventRejected                       // submit refused: wrong length or unknown word
	EventScored                         // valid, wrong guess; a try was consumed
	EventWon                            // exact match
	EventLost                           // wrong guess with no tries left
	EventEnded                          // input ended before the session finished
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventBufferUpdated:
		return "buffer"
	case EventRejected:
		return "rejected"
	case EventScored:
		return "scored"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventEnded:
		return "ended"
	}
	return "unknown"
}

// Event is returned by every engine call.
type Event struct {
	Kind           EventKind
	Buffer         string // buffer contents, or the submitted guess for scored/won/lost
	Distance       int    // edit distance to the secret (scored/lost)
	TriesRemaining int    // after the transition
	Attempts       int    // valid guesses made so far
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kanales/levdle/internal/game"
)

// Cursor control; lipgloss only styles text.
const (
	clearLine = "\033[99D\033[K"
	moveLeft  = "\033[99D"
)

// Renderer draws engine events as a single redrawn line per guess.
type Renderer struct {
	w        io.Writer
	maxTries int

	guess    lipgloss.Style
	distance lipgloss.Style
	win      lipgloss.Style
}

// NewRenderer writes to w using the basic 16-colour ANSI palette, whatever
// w is. Colour support is the caller's concern (go-colorable on stdout).
func NewRenderer(w io.Writer, maxTries int) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(termenv.ANSI)
	return &Renderer{
		w:        w,
		maxTries: maxTries,
		guess:    lg.NewStyle().Foreground(lipgloss.Color("3")),
		distance: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		win:      lg.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Event writes the terminal update for ev. EventNone writes nothing.
func (r *Renderer) Event(ev game.Event) error {
	var s string
	switch ev.Kind {
	case game.EventBufferUpdated:
		s = clearLine + spaced(ev.Buffer)
	case game.EventRejected:
		s = clearLine + spaced(ev.Buffer) + " 🚨"
	case game.EventScored:
		s = r.scoredLine(ev) + "\n"
	case game.EventLost:
		// The summary starts with its own newline.
		s = r.scoredLine(ev)
	case game.EventWon:
		s = clearLine + r.win.Render(spaced(ev.Buffer)) + "\n"
	case game.EventEnded:
		s = "\n"
	default:
		return nil
	}
	_, err := io.WriteString(r.w, s)
	return err
}

// Summary prints the end-of-session line. The secret is only revealed
// when the game was played to the end.
func (r *Renderer) Summary(o Outcome) error {
	var err error
	switch {
	case o.Won:
		_, err = fmt.Fprintf(r.w, "%s🎉 You win! [%d/%d]\n", moveLeft, o.Attempts, r.maxTries)
	case o.Ended:
		_, err = io.WriteString(r.w, "\n💩 You lost...\n")
	default:
		_, err = fmt.Fprintf(r.w, "\n💩 You lost... the word was %s\n", o.Secret)
	}
	return err
}

// AlreadyPlayed prints the gate refusal.
func (r *Renderer) AlreadyPlayed() error {
	_, err := io.WriteString(r.w, "You already played today. Come back tomorrow!\n")
	return err
}

func (r *Renderer) scoredLine(ev game.Event) string {
	return fmt.Sprintf("%s%s [%s]", clearLine, r.guess.Render(spaced(ev.Buffer)), r.distance.Render(fmt.Sprint(ev.Distance)))
}

// spaced renders "ABC" as "A B C".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

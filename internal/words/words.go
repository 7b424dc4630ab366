// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load the word list from a file or fall back to the embedded default.
//   - Normalise entries (trim, uppercase, keep 5-letter A–Z words).
//   - Expose an immutable List used both as the secret pool and as the
//     dictionary of acceptable guesses.
//
// A List is built once at startup and shared by pointer; nothing in this
// package holds process-wide state.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/kanales/levdle/assets"
)

// Length is the fixed number of letters in every word.
const Length = 5

// ErrEmptyList is returned when no valid word survives normalisation.
var ErrEmptyList = errors.New("words: list is empty")

// List is an ordered, read-only word list with O(1) membership lookup.
type List struct {
	words []string            // in source order
	set   map[string]struct{} // deduplicated lookup
}

// New builds a List from raw entries.
func New(raw []string) (*List, error) {
	ws := normalize(raw)
	if len(ws) == 0 {
		return nil, ErrEmptyList
	}
	return &List{words: ws, set: toSet(ws)}, nil
}

// Load reads a newline-delimited word file.
func Load(path string) (*List, error) {
	raw, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	l, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Default returns the list embedded in the binary.
func Default() (*List, error) {
	raw, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	return New(raw)
}

// Len returns the number of entries, duplicates included.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Contains reports whether w is in the list (case-insensitive).
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToUpper(w)]
	return ok
}

// Words returns a copy of the entries in order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// readWordFile loads one entry per line.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize trims and uppercases entries, dropping anything that is not a
// five-letter A–Z word. Order is preserved.
func normalize(raw []string) []string {
	upper := lo.Map(raw, func(s string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})
	return lo.Filter(upper, func(w string, _ int) bool {
		return len(w) == Length && isAlpha(w)
	})
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

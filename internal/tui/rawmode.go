package tui

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// RawMode switches the input terminal into raw mode. The returned restore
// func is safe to call more than once and from any goroutine.
type RawMode interface {
	Acquire() (restore func(), err error)
}

// TermRawMode puts the terminal behind Fd into raw mode.
type TermRawMode struct {
	Fd int
}

func (r TermRawMode) Acquire() (func(), error) {
	old, err := term.MakeRaw(r.Fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	var once sync.Once
	return func() {
		once.Do(func() { _ = term.Restore(r.Fd, old) })
	}, nil
}

// NoRawMode is used when stdin is not a terminal (pipes, tests).
type NoRawMode struct{}

func (NoRawMode) Acquire() (func(), error) { return func() {}, nil }

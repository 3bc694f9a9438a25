// Package input defines the abstract input event language and a blocking,
// timeout-bounded reader over it, grounded on vi-fighter's
// terminal/input.go reader-goroutine-plus-channel pattern.
package input

import (
	"time"

	"github.com/brunoczim/thedes/geometry"
)

// MainKey is the non-modifier identity of a key press.
type MainKey uint8

const (
	Char MainKey = iota
	Up
	Down
	Left
	Right
	Esc
	Enter
	Backspace
	Delete
)

// Key is a single key press, with modifiers. Rune is only meaningful when
// MainKey == Char.
type Key struct {
	MainKey MainKey
	Rune    rune
	Ctrl    bool
	Alt     bool
	Shift   bool
}

// EventKind discriminates the abstract input event language.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventPaste
	// EventResize is internal: the runtime consumes it directly and never
	// forwards it to a Tick handler.
	EventResize
)

// Event is one element the reader produces.
type Event struct {
	Kind   EventKind
	Key    Key
	Paste  string
	Resize geometry.CoordPair
}

// Device reads events with a bounded timeout, matching the runtime's
// requirement to never block longer than the tick interval allows.
type Device interface {
	// ReadEvents drains all events pending within timeout. An empty
	// result is not an error: it means nothing arrived before the
	// deadline.
	ReadEvents(timeout time.Duration) ([]Event, error)

	// Close releases the reader's background resources.
	Close() error
}

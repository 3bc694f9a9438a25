package screen

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/geometry"
)

// native is the tcell-backed Device implementation, grounded on the
// vi-fighter's own termImpl (terminal/terminal.go): a single mutex-guarded
// struct owning the underlying screen handle, translating the abstract
// command stream into terminal escape sequences via tcell.
type native struct {
	mu     sync.Mutex
	screen tcell.Screen

	cursorX int
	cursorY int

	entered bool
}

// NewNative constructs a Device backed by a real terminal via tcell.
func NewNative() (Device, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "screen: create tcell screen")
	}
	return &native{screen: s}, nil
}

func (n *native) Enter() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.entered {
		return nil
	}
	if err := n.screen.Init(); err != nil {
		return errors.Wrap(err, "screen: init")
	}
	n.screen.HideCursor()
	n.screen.Clear()
	n.entered = true
	return nil
}

func (n *native) Leave() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.entered {
		return nil
	}
	n.screen.Fini()
	n.entered = false
	return nil
}

func (n *native) Size() geometry.CoordPair {
	n.mu.Lock()
	defer n.mu.Unlock()
	w, h := n.screen.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return geometry.CoordPair{X: geometry.Coord(w), Y: geometry.Coord(h)}
}

func (n *native) Submit(cmds []Command) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	style := tcell.StyleDefault
	for _, cmd := range cmds {
		switch cmd.Kind {
		case Clear:
			n.screen.Clear()
		case SetBackground:
			style = style.Background(toTcellColor(cmd.Color))
		case SetForeground:
			style = style.Foreground(toTcellColor(cmd.Color))
		case MoveCursor:
			n.cursorX = int(cmd.Point.X)
			n.cursorY = int(cmd.Point.Y)
		case Write:
			n.screen.SetContent(n.cursorX, n.cursorY, cmd.Char, nil, style)
			n.cursorX++
		}
	}
	n.screen.Show()
	return nil
}

// Pollable is implemented by Device backends that can serve raw tcell
// events to an input.Device adapter; callers type-assert a Device
// against it before wiring input.NewTcellDevice.
type Pollable interface {
	PollEvent() tcell.Event
}

// PollEvent blocks for the next raw tcell event. The input package wraps
// this to translate into the abstract input.Event language.
func (n *native) PollEvent() tcell.Event {
	return n.screen.PollEvent()
}

// PostEvent injects a synthetic event into the tcell event queue, which
// unblocks a pending PollEvent call.
func (n *native) PostEvent(ev tcell.Event) error {
	return n.screen.PostEvent(ev)
}

// Underlying exposes the tcell.Screen the native backend renders
// through. The input package does not go through it: it polls via the
// device's own PollEvent method (see Pollable).
func (n *native) Underlying() tcell.Screen {
	return n.screen
}

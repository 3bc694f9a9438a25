package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/brunoczim/thedes/geometry"
)

// pollable is the subset of tcell.Screen the reader needs; the native
// screen device satisfies it through its own PollEvent method.
type pollable interface {
	PollEvent() tcell.Event
}

// TcellDevice reads tcell events on a background goroutine and serves
// them to ReadEvents through a buffered channel, the same
// decouple-the-blocking-read-from-the-tick-select shape as
// cmd/vi-fighter/main.go's `go func() { for { eventChan <- screen.PollEvent() } }()`.
type TcellDevice struct {
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewTcellDevice starts the background poll loop over scr.
func NewTcellDevice(scr pollable) *TcellDevice {
	d := &TcellDevice{
		eventCh: make(chan tcell.Event, 128),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go d.pollLoop(scr)
	return d
}

func (d *TcellDevice) pollLoop(scr pollable) {
	defer close(d.doneCh)
	for {
		select {
		case <-d.stopCh:
			return
		default:
		}
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.eventCh <- ev:
		case <-d.stopCh:
			return
		}
	}
}

// ReadEvents drains everything currently queued, blocking up to timeout
// for at least one event if the queue starts empty.
func (d *TcellDevice) ReadEvents(timeout time.Duration) ([]Event, error) {
	var out []Event

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case raw := <-d.eventCh:
		out = append(out, translate(raw))
	case <-timer.C:
		return out, nil
	}

	for {
		select {
		case raw := <-d.eventCh:
			out = append(out, translate(raw))
		default:
			return out, nil
		}
	}
}

// Close stops the poll goroutine. It does not wait for an in-flight
// PollEvent call to return, since tcell's PollEvent only unblocks on the
// next real event or on screen.Fini(); the runtime always calls
// screen.Leave() (which calls Fini) around Close.
func (d *TcellDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	close(d.stopCh)
	return nil
}

func translate(raw tcell.Event) Event {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		return Event{Kind: EventKey, Key: translateKey(ev)}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: EventResize, Resize: geometry.CoordPair{X: geometry.Coord(w), Y: geometry.Coord(h)}}
	case *tcell.EventPaste:
		// tcell signals bracketed-paste start/stop rather than carrying
		// the text itself; higher layers that care about paste content
		// accumulate EventKey runs between Start()/End() (ev.Start()).
		return Event{Kind: EventPaste}
	default:
		return Event{Kind: EventKey, Key: Key{MainKey: Char}}
	}
}

func translateKey(ev *tcell.EventKey) Key {
	k := Key{
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
		Shift: ev.Modifiers()&tcell.ModShift != 0,
	}
	switch ev.Key() {
	case tcell.KeyUp:
		k.MainKey = Up
	case tcell.KeyDown:
		k.MainKey = Down
	case tcell.KeyLeft:
		k.MainKey = Left
	case tcell.KeyRight:
		k.MainKey = Right
	case tcell.KeyEsc:
		k.MainKey = Esc
	case tcell.KeyEnter:
		k.MainKey = Enter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.MainKey = Backspace
	case tcell.KeyDelete:
		k.MainKey = Delete
	case tcell.KeyRune:
		k.MainKey = Char
		k.Rune = ev.Rune()
	default:
		k.MainKey = Char
		k.Rune = ev.Rune()
	}
	return k
}

// Package runtime implements the cooperative tick scheduler: it drains
// input, invokes the handler, composes the canvas, and flushes the
// screen device on a fixed cadence. Grounded on
// cmd/vi-fighter/main.go's select-based main loop and engine/game.go's
// frame-timing bookkeeping.
package runtime

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/canvas"
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/grapheme"
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/screen"
)

// resizeMargin is the fixed margin the runtime
// blocks whenever the terminal is smaller than canvas+2 in either axis.
const resizeMargin = 2

// Tick is the mutable per-frame context handed to the user's handler.
type Tick struct {
	Events    []input.Event
	Canvas    *canvas.Canvas
	Graphemes *grapheme.Registry
	Cancel    CancelToken
}

// Handler is invoked once per tick. Returning false stops the runtime
// cleanly, as if the cancellation token had fired.
type Handler func(*Tick) bool

// Runtime owns the tick cadence, the canvas, and the screen/input
// devices.
type Runtime struct {
	device screen.Device
	in     input.Device
	cfg    Config
	status Status
	cancel CancelToken
	reg    *grapheme.Registry
	cv     *canvas.Canvas
}

// New constructs a Runtime. cfg is validated immediately so a
// misconfigured poll/tick interval fails fast rather than surfacing as a
// starved loop later.
func New(device screen.Device, in input.Device, cfg Config) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reg := grapheme.NewRegistry()
	return &Runtime{
		device: device,
		in:     in,
		cfg:    cfg,
		cancel: NewCancelToken(),
		reg:    reg,
		cv:     canvas.New(reg, cfg.CanvasSize),
	}, nil
}

// Status returns the runtime's observable blocked/unblocked state.
func (r *Runtime) Status() *Status { return &r.status }

// Cancel returns the runtime's cancellation token, clonable into any
// long-running task the handler launches.
func (r *Runtime) Cancel() CancelToken { return r.cancel }

// Run drives the cooperative loop until handler returns false or the
// cancellation token fires. Device I/O errors abort the loop and
// propagate to the caller; input read errors are logged and treated as
// no input for that tick.
func (r *Runtime) Run(handler Handler) error {
	if err := r.device.Enter(); err != nil {
		return errors.Wrap(err, "runtime: enter device")
	}
	defer r.device.Leave()

	then := time.Now()
	var correction time.Duration
	tickCount := 0

	for {
		if r.cancel.Cancelled() {
			return nil
		}

		r.checkResize()

		elapsed := time.Since(then) - correction
		remaining := r.cfg.TickInterval - elapsed
		timeout := r.cfg.MinPollInterval
		if remaining < timeout {
			timeout = remaining
		}
		if timeout < 0 {
			timeout = 0
		}

		events, err := r.in.ReadEvents(timeout)
		if err != nil {
			log.Printf("runtime: read input: %v", err)
			events = nil // log-and-continue: treated as no events this tick
		}
		events = r.filterResize(events)

		tick := &Tick{
			Events:    events,
			Canvas:    r.cv,
			Graphemes: r.reg,
			Cancel:    r.cancel,
		}

		if !handler(tick) {
			return nil
		}

		tickCount++
		if tickCount%r.cfg.RenderCoalesceTicks == 0 && !r.status.IsBlocked() {
			if err := r.flush(); err != nil {
				return errors.Wrap(err, "runtime: flush device")
			}
		}

		now := time.Now()
		elapsed = now.Sub(then) - correction
		if elapsed < r.cfg.TickInterval {
			sleep := r.cfg.TickInterval - elapsed
			time.Sleep(sleep)
			correction += sleep
		} else {
			correction = 0
		}
		then = now
	}
}

func (r *Runtime) flush() error {
	cmds := r.cv.Diff()
	if len(cmds) == 0 {
		return nil
	}
	return r.device.Submit(cmds)
}

// filterResize consumes EventResize internally (resizes are
// never forwarded to user handlers) while applying the blocked/unblocked
// transition.
func (r *Runtime) filterResize(events []input.Event) []input.Event {
	out := events[:0:0]
	for _, ev := range events {
		if ev.Kind == input.EventResize {
			r.applyResize(ev.Resize)
			continue
		}
		out = append(out, ev)
	}
	return out
}

func (r *Runtime) applyResize(size geometry.CoordPair) {
	r.transitionBlocked(size)
}

// checkResize polls the device's current size directly, covering
// backends (and the Null test device) that don't emit a dedicated resize
// event.
func (r *Runtime) checkResize() {
	r.transitionBlocked(r.device.Size())
}

func (r *Runtime) transitionBlocked(size geometry.CoordPair) {
	needW := r.cfg.CanvasSize.X + resizeMargin
	needH := r.cfg.CanvasSize.Y + resizeMargin
	blocked := size.X < needW || size.Y < needH

	wasBlocked := r.status.IsBlocked()
	if blocked == wasBlocked {
		return
	}
	r.status.setBlocked(blocked)

	if blocked {
		r.showBlockedNotice(needW, needH)
	} else {
		r.cv.MarkAllDirty()
	}
}

func (r *Runtime) showBlockedNotice(needW, needH geometry.Coord) {
	notice := resizeNotice(needW, needH)
	cmds := []screen.Command{{Kind: screen.Clear}}
	for i, ch := range notice {
		cmds = append(cmds,
			screen.Command{Kind: screen.MoveCursor, Point: geometry.CoordPair{X: geometry.Coord(i), Y: 0}},
			screen.Command{Kind: screen.Write, Char: ch},
		)
	}
	_ = r.device.Submit(cmds)
}

func resizeNotice(w, h geometry.Coord) string {
	return "resize to " + itoa(int(w)) + "x" + itoa(int(h))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

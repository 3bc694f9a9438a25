package screen

import "github.com/brunoczim/thedes/geometry"

// Device is the abstract screen device the canvas diffs against. A single
// capability set covers both the native backend and the null backend used
// in tests.
type Device interface {
	// Enter puts the device into full-screen mode: alternate screen,
	// raw mode, cursor hidden.
	Enter() error

	// Leave restores the device to its original state. Safe to call more
	// than once.
	Leave() error

	// Size reports the current device dimensions in cells.
	Size() geometry.CoordPair

	// Submit writes a batch of commands and flushes them as a single
	// frame. Submit never blocks longer than the underlying I/O requires.
	Submit(cmds []Command) error
}

// ResizeEvent describes a change in the controlling terminal's size. No
// backend in this module emits it: the runtime learns of resizes from
// input.EventResize values and by polling Device.Size.
type ResizeEvent struct {
	Size geometry.CoordPair
}

package screen

import (
	"sync"

	"github.com/brunoczim/thedes/geometry"
)

// Null is a no-op Device that records the command stream it receives,
// used by the runtime's tests in place of a real terminal.
type Null struct {
	mu       sync.Mutex
	size     geometry.CoordPair
	Entered  int
	Left     int
	Submits  [][]Command
	AllCmds  []Command
}

// NewNull constructs a Null device with the given fixed size.
func NewNull(size geometry.CoordPair) *Null {
	return &Null{size: size}
}

func (d *Null) Enter() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Entered++
	return nil
}

func (d *Null) Leave() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Left++
	return nil
}

func (d *Null) Size() geometry.CoordPair {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

// Resize lets tests simulate a terminal resize.
func (d *Null) Resize(size geometry.CoordPair) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.size = size
}

func (d *Null) Submit(cmds []Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	batch := make([]Command, len(cmds))
	copy(batch, cmds)
	d.Submits = append(d.Submits, batch)
	d.AllCmds = append(d.AllCmds, batch...)
	return nil
}

// LastSubmit returns the most recent batch submitted, or nil if none yet.
func (d *Null) LastSubmit() []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Submits) == 0 {
		return nil
	}
	return d.Submits[len(d.Submits)-1]
}

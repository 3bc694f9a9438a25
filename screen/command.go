// Package screen defines the abstract screen device: a command stream
// between the canvas and a concrete terminal backend.
package screen

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/tile"
)

// CommandKind discriminates the abstract wire command.
type CommandKind uint8

const (
	Clear CommandKind = iota
	SetBackground
	SetForeground
	MoveCursor
	Write
)

// Command is one element of the device command stream. Only the fields
// relevant to Kind are populated.
type Command struct {
	Kind  CommandKind
	Color tile.Color
	Point geometry.CoordPair
	Char  rune
}

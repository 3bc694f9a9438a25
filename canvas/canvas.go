// Package canvas implements the runtime's offscreen tile buffer: a
// rectangular grid of tiles with a dirty bitmap, diffed to screen device
// commands once per render-coalescing window.
package canvas

import (
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/grapheme"
	"github.com/brunoczim/thedes/screen"
	"github.com/brunoczim/thedes/tile"
)

// Canvas is a rectangular grid of tiles plus a dirty bitmap.
type Canvas struct {
	topLeft geometry.CoordPair
	size    geometry.CoordPair
	tiles   []tile.Tile
	dirty   []bool
	reg     *grapheme.Registry
}

// New creates a canvas of the given size, filled with the default tile.
func New(reg *grapheme.Registry, size geometry.CoordPair) *Canvas {
	n := int(size.X) * int(size.Y)
	c := &Canvas{
		size:  size,
		tiles: make([]tile.Tile, n),
		dirty: make([]bool, n),
		reg:   reg,
	}
	def := tile.DefaultTile(reg)
	for i := range c.tiles {
		c.tiles[i] = def
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() geometry.CoordPair { return c.size }

// TopLeft returns the canvas's screen-space origin.
func (c *Canvas) TopLeft() geometry.CoordPair { return c.topLeft }

// SetTopLeft repositions the canvas within the device's coordinate space.
func (c *Canvas) SetTopLeft(p geometry.CoordPair) { c.topLeft = p }

func (c *Canvas) index(p geometry.CoordPair) (int, bool) {
	if p.X >= c.size.X || p.Y >= c.size.Y {
		return 0, false
	}
	return int(p.Y)*int(c.size.X) + int(p.X), true
}

// Get reads the tile at p. Out-of-bounds reads return the default tile.
func (c *Canvas) Get(p geometry.CoordPair) tile.Tile {
	i, ok := c.index(p)
	if !ok {
		return tile.DefaultTile(c.reg)
	}
	return c.tiles[i]
}

// Set writes t at p and marks the cell dirty. Out-of-bounds writes are a
// no-op, matching a canvas that is never addressed outside its own
// bounds by well-behaved callers.
func (c *Canvas) Set(p geometry.CoordPair, t tile.Tile) {
	i, ok := c.index(p)
	if !ok {
		return
	}
	if c.tiles[i] == t {
		return
	}
	c.tiles[i] = t
	c.dirty[i] = true
}

// Resize grows or shrinks the canvas in place, preserving the overlap with
// the previous contents and filling new cells with the default tile. All
// cells are marked dirty, matching the "next diff is a full repaint"
// behavior required after an unblock.
func (c *Canvas) Resize(size geometry.CoordPair) {
	def := tile.DefaultTile(c.reg)
	newTiles := make([]tile.Tile, int(size.X)*int(size.Y))
	newDirty := make([]bool, len(newTiles))
	for i := range newTiles {
		newTiles[i] = def
		newDirty[i] = true
	}
	minW := size.X
	if c.size.X < minW {
		minW = c.size.X
	}
	minH := size.Y
	if c.size.Y < minH {
		minH = c.size.Y
	}
	for y := geometry.Coord(0); y < minH; y++ {
		for x := geometry.Coord(0); x < minW; x++ {
			oldIdx := int(y)*int(c.size.X) + int(x)
			newIdx := int(y)*int(size.X) + int(x)
			newTiles[newIdx] = c.tiles[oldIdx]
		}
	}
	c.size = size
	c.tiles = newTiles
	c.dirty = newDirty
}

// MarkAllDirty forces every cell to be included in the next diff, used
// when the device needs a full repaint (e.g. leaving the blocked state).
func (c *Canvas) MarkAllDirty() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// Diff produces the device command stream for every dirty cell since the
// last call, and clears the dirty bitmap. Commands move the cursor before
// each write; consecutive dirty cells on the same row are not
// batched specially, matching the device's flat command language.
func (c *Canvas) Diff() []screen.Command {
	var cmds []screen.Command
	var lastColors *tile.ColorPair

	for y := geometry.Coord(0); y < c.size.Y; y++ {
		for x := geometry.Coord(0); x < c.size.X; x++ {
			i := int(y)*int(c.size.X) + int(x)
			if !c.dirty[i] {
				continue
			}
			c.dirty[i] = false

			t := c.tiles[i]
			if lastColors == nil || lastColors.Foreground != t.Colors.Foreground {
				cmds = append(cmds, screen.Command{Kind: screen.SetForeground, Color: t.Colors.Foreground})
			}
			if lastColors == nil || lastColors.Background != t.Colors.Background {
				cmds = append(cmds, screen.Command{Kind: screen.SetBackground, Color: t.Colors.Background})
			}
			colors := t.Colors
			lastColors = &colors

			cmds = append(cmds, screen.Command{
				Kind:  screen.MoveCursor,
				Point: c.topLeft.Add(geometry.CoordPair{X: x, Y: y}),
			})
			r := ' '
			if g, ok := c.reg.Lookup(t.Grapheme); ok {
				for _, rr := range g {
					r = rr
					break
				}
			}
			cmds = append(cmds, screen.Command{Kind: screen.Write, Char: r})
		}
	}
	return cmds
}

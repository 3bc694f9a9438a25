// Package ui implements small interactive widgets drawn onto a runtime
// canvas: a menu, an info dialog, a text input field, and a progress bar.
// Each interactive widget is a statemachine.StateMachine driven by one
// tick's input events, grounded on terminal/tui's list/dialog/textfield/
// progress widgets but reimplemented atop canvas.Canvas and
// statemachine.StateMachine instead of direct tcell drawing.
package ui

import (
	"github.com/brunoczim/thedes/canvas"
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/grapheme"
	"github.com/brunoczim/thedes/tile"
)

// Region is a rectangular sub-area of a canvas that widgets draw into.
// Coordinates passed to its methods are region-local; out-of-bounds
// writes are silently clipped, matching the tui package's Region.Cell
// clipping behavior.
type Region struct {
	Canvas    *canvas.Canvas
	Graphemes *grapheme.Registry
	TopLeft   geometry.CoordPair
	Size      geometry.CoordPair
}

// Cell writes a single rune at (x, y) in region-local coordinates.
func (r Region) Cell(x, y int, ch rune, colors tile.ColorPair) {
	if x < 0 || y < 0 || x >= int(r.Size.X) || y >= int(r.Size.Y) {
		return
	}
	id, err := r.Graphemes.GetOrRegister(string(ch))
	if err != nil {
		return
	}
	p := geometry.CoordPair{
		X: r.TopLeft.X + geometry.Coord(x),
		Y: r.TopLeft.Y + geometry.Coord(y),
	}
	r.Canvas.Set(p, tile.Tile{Colors: colors, Grapheme: id})
}

// Text renders s left-to-right starting at (x, y), clipping at the
// region's right edge.
func (r Region) Text(x, y int, s string, colors tile.ColorPair) {
	col := 0
	for _, ch := range s {
		r.Cell(x+col, y, ch, colors)
		col++
	}
}

// TextCenter renders s horizontally centered on row y.
func (r Region) TextCenter(y int, s string, colors tile.ColorPair) {
	x := (int(r.Size.X) - runeLen(s)) / 2
	r.Text(x, y, s, colors)
}

// Fill paints every cell in the region with ch.
func (r Region) Fill(ch rune, colors tile.ColorPair) {
	for y := 0; y < int(r.Size.Y); y++ {
		for x := 0; x < int(r.Size.X); x++ {
			r.Cell(x, y, ch, colors)
		}
	}
}

// Box draws a single-line border around the region's edge.
func (r Region) Box(colors tile.ColorPair) {
	w, h := int(r.Size.X), int(r.Size.Y)
	if w < 2 || h < 2 {
		return
	}
	r.Cell(0, 0, '┌', colors)
	r.Cell(w-1, 0, '┐', colors)
	r.Cell(0, h-1, '└', colors)
	r.Cell(w-1, h-1, '┘', colors)
	for x := 1; x < w-1; x++ {
		r.Cell(x, 0, '─', colors)
		r.Cell(x, h-1, '─', colors)
	}
	for y := 1; y < h-1; y++ {
		r.Cell(0, y, '│', colors)
		r.Cell(w-1, y, '│', colors)
	}
}

// Sub returns the w x h sub-region whose top-left corner sits at (x, y)
// in region-local coordinates.
func (r Region) Sub(x, y, w, h int) Region {
	return Region{
		Canvas:    r.Canvas,
		Graphemes: r.Graphemes,
		TopLeft:   r.TopLeft.Add(geometry.CoordPair{X: geometry.Coord(x), Y: geometry.Coord(y)}),
		Size:      geometry.CoordPair{X: geometry.Coord(w), Y: geometry.Coord(h)},
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

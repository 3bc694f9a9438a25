// Package geometry defines the integer 2D primitives shared by the canvas,
// map and generator packages: points, sizes, rectangles and the four
// cardinal directions.
package geometry

import "fmt"

// Coord is a coordinate along one axis. Both world and screen space use the
// same 16-bit unsigned representation.
type Coord uint16

// CoordPair is a point or a size, depending on context.
type CoordPair struct {
	X Coord
	Y Coord
}

// Add returns the component-wise sum of two pairs.
func (p CoordPair) Add(q CoordPair) CoordPair {
	return CoordPair{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p CoordPair) Sub(q CoordPair) CoordPair {
	return CoordPair{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p CoordPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	TopLeft CoordPair
	Size    CoordPair
}

// BottomRight returns the exclusive bottom-right corner of the rectangle,
// and false if computing it would overflow a Coord.
func (r Rect) BottomRight() (CoordPair, bool) {
	x := uint32(r.TopLeft.X) + uint32(r.Size.X)
	y := uint32(r.TopLeft.Y) + uint32(r.Size.Y)
	if x > 0xFFFF || y > 0xFFFF {
		return CoordPair{}, false
	}
	return CoordPair{X: Coord(x), Y: Coord(y)}, true
}

// Contains reports whether point lies within the rectangle.
func (r Rect) Contains(point CoordPair) bool {
	br, ok := r.BottomRight()
	if !ok {
		return false
	}
	return point.X >= r.TopLeft.X && point.X < br.X &&
		point.Y >= r.TopLeft.Y && point.Y < br.Y
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Offset returns the unit displacement for the direction.
func (d Direction) Offset() (dx, dy int32) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Move applies the direction's offset to point, reporting false if the
// result would leave the valid Coord range.
func (d Direction) Move(point CoordPair) (CoordPair, bool) {
	dx, dy := d.Offset()
	x := int32(point.X) + dx
	y := int32(point.Y) + dy
	if x < 0 || x > 0xFFFF || y < 0 || y > 0xFFFF {
		return CoordPair{}, false
	}
	return CoordPair{X: Coord(x), Y: Coord(y)}, true
}

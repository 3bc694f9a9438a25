package canvas

import (
	"testing"

	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/grapheme"
	"github.com/brunoczim/thedes/screen"
	"github.com/brunoczim/thedes/tile"
)

func TestNewCanvasDefaultTiles(t *testing.T) {
	reg := grapheme.NewRegistry()
	c := New(reg, geometry.CoordPair{X: 4, Y: 3})
	got := c.Get(geometry.CoordPair{X: 1, Y: 1})
	want := tile.DefaultTile(reg)
	if got != want {
		t.Fatalf("expected default tile, got %+v", got)
	}
}

func TestSetAndDiff(t *testing.T) {
	reg := grapheme.NewRegistry()
	c := New(reg, geometry.CoordPair{X: 4, Y: 3})
	id, err := reg.GetOrRegister("x")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	c.Set(geometry.CoordPair{X: 2, Y: 1}, tile.Tile{Colors: tile.DefaultColorPair, Grapheme: id})

	cmds := c.Diff()
	foundWrite := false
	for _, cmd := range cmds {
		if cmd.Kind == screen.Write && cmd.Char == 'x' {
			foundWrite = true
		}
	}
	if !foundWrite {
		t.Fatalf("expected a Write('x') command in %v", cmds)
	}

	// A second diff with no new writes should be empty.
	if cmds2 := c.Diff(); len(cmds2) != 0 {
		t.Fatalf("expected empty diff after first flush, got %v", cmds2)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	reg := grapheme.NewRegistry()
	c := New(reg, geometry.CoordPair{X: 2, Y: 2})
	id, _ := reg.GetOrRegister("o")
	c.Set(geometry.CoordPair{X: 0, Y: 0}, tile.Tile{Colors: tile.DefaultColorPair, Grapheme: id})
	c.Diff() // clear dirty

	c.Resize(geometry.CoordPair{X: 3, Y: 3})
	got := c.Get(geometry.CoordPair{X: 0, Y: 0})
	if g, _ := reg.Lookup(got.Grapheme); g != "o" {
		t.Fatalf("expected preserved tile after resize, got %q", g)
	}

	cmds := c.Diff()
	if len(cmds) == 0 {
		t.Fatalf("expected resize to mark all cells dirty for a full repaint")
	}
}

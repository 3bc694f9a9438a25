package screen

import (
	"testing"

	"github.com/brunoczim/thedes/geometry"
)

func TestNullRecordsEnterLeave(t *testing.T) {
	d := NewNull(geometry.CoordPair{X: 80, Y: 24})
	if err := d.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Leave(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Entered != 1 || d.Left != 1 {
		t.Fatalf("expected one Enter and one Leave, got %d/%d", d.Entered, d.Left)
	}
}

func TestNullResizeChangesSize(t *testing.T) {
	d := NewNull(geometry.CoordPair{X: 10, Y: 10})
	d.Resize(geometry.CoordPair{X: 20, Y: 5})
	if got := d.Size(); got.X != 20 || got.Y != 5 {
		t.Fatalf("unexpected size after resize: %+v", got)
	}
}

func TestNullSubmitTracksBatchesAndFlattened(t *testing.T) {
	d := NewNull(geometry.CoordPair{X: 10, Y: 10})
	batch1 := []Command{{Kind: Clear}}
	batch2 := []Command{{Kind: Write, Char: 'x'}, {Kind: MoveCursor, Point: geometry.CoordPair{X: 1, Y: 2}}}

	if err := d.Submit(batch1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Submit(batch2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.AllCmds) != 3 {
		t.Fatalf("expected 3 flattened commands, got %d", len(d.AllCmds))
	}
	last := d.LastSubmit()
	if len(last) != 2 || last[0].Kind != Write || last[1].Kind != MoveCursor {
		t.Fatalf("unexpected last submit: %+v", last)
	}
}

func TestNullLastSubmitEmptyWhenNoneYet(t *testing.T) {
	d := NewNull(geometry.CoordPair{X: 1, Y: 1})
	if got := d.LastSubmit(); got != nil {
		t.Fatalf("expected nil last submit, got %+v", got)
	}
}

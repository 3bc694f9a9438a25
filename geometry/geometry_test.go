package geometry

import "testing"

func TestRectBottomRight(t *testing.T) {
	r := Rect{TopLeft: CoordPair{X: 4, Y: 7}, Size: CoordPair{X: 32, Y: 32}}
	br, ok := r.BottomRight()
	if !ok {
		t.Fatalf("expected no overflow")
	}
	if br != (CoordPair{X: 36, Y: 39}) {
		t.Fatalf("got %v", br)
	}
}

func TestRectBottomRightOverflow(t *testing.T) {
	r := Rect{TopLeft: CoordPair{X: 0xFFFE, Y: 0}, Size: CoordPair{X: 10, Y: 1}}
	if _, ok := r.BottomRight(); ok {
		t.Fatalf("expected overflow to be reported")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{TopLeft: CoordPair{X: 2, Y: 2}, Size: CoordPair{X: 4, Y: 4}}
	if !r.Contains(CoordPair{X: 2, Y: 2}) {
		t.Fatalf("top-left should be contained")
	}
	if r.Contains(CoordPair{X: 6, Y: 2}) {
		t.Fatalf("exclusive bottom-right edge should not be contained")
	}
	if r.Contains(CoordPair{X: 1, Y: 2}) {
		t.Fatalf("point left of rect should not be contained")
	}
}

func TestDirectionMove(t *testing.T) {
	p := CoordPair{X: 5, Y: 5}
	cases := []struct {
		dir  Direction
		want CoordPair
	}{
		{Up, CoordPair{X: 5, Y: 4}},
		{Down, CoordPair{X: 5, Y: 6}},
		{Left, CoordPair{X: 4, Y: 5}},
		{Right, CoordPair{X: 6, Y: 5}},
	}
	for _, c := range cases {
		got, ok := c.dir.Move(p)
		if !ok {
			t.Fatalf("%s: unexpected overflow", c.dir)
		}
		if got != c.want {
			t.Fatalf("%s: got %v want %v", c.dir, got, c.want)
		}
	}
}

func TestDirectionMoveUnderflow(t *testing.T) {
	p := CoordPair{X: 0, Y: 0}
	if _, ok := Up.Move(p); ok {
		t.Fatalf("expected underflow moving up from y=0")
	}
	if _, ok := Left.Move(p); ok {
		t.Fatalf("expected underflow moving left from x=0")
	}
}

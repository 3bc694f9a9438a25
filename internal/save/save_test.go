package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brunoczim/thedes/input"
)

func TestDiscoverFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "alpha.thd")
	write(t, dir, "beta.thd")
	write(t, dir, "notes.txt")

	entries, err := Discover(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "alpha" || entries[1].Name != "beta" {
		t.Fatalf("expected sorted [alpha beta], got %+v", entries)
	}
}

func TestDiscoverMissingDirReturnsEmpty(t *testing.T) {
	entries, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestMenuBuildsOneItemPerEntry(t *testing.T) {
	entries := []Entry{{Name: "alpha"}, {Name: "beta"}}
	menu := Menu(entries)
	done, err := menu.OnTick(nil)
	if err != nil || done {
		t.Fatalf("unexpected done=%v err=%v", done, err)
	}

	down := input.Event{Kind: input.EventKey, Key: input.Key{MainKey: input.Down}}
	enter := input.Event{Kind: input.EventKey, Key: input.Key{MainKey: input.Enter}}
	done, err = menu.OnTick([]input.Event{down, down, enter})
	if err != nil || !done {
		t.Fatalf("expected selection to finish the menu, got done=%v err=%v", done, err)
	}
	item, ok := menu.Selected()
	if !ok || item.Label != "beta" {
		t.Fatalf("expected the cursor to stop on the second and last item \"beta\", got %+v ok=%v", item, ok)
	}
}

func write(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// Package save discovers on-disk save files: any `.thd`-suffixed file
// directly inside a save directory, presented as a cancellable
// ui.Menu selection, grounded on content/manager.go's missing-directory-
// is-not-an-error, os.ReadDir-and-filter-by-suffix discovery style.
package save

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/ui"
)

// Extension is the fixed suffix a save file must carry to be listed.
const Extension = ".thd"

// Entry is one discovered save file.
type Entry struct {
	// Name is the save's display name: its file name with Extension
	// stripped.
	Name string
	// Path is the full path to the save file.
	Path string
}

// Discover lists every Extension-suffixed file directly inside dir,
// sorted by name. A missing dir is reported as zero entries, not an
// error, since "no saves yet" is a normal state for a fresh install.
func Discover(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "save: read directory %q", dir)
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		out = append(out, Entry{
			Name: strings.TrimSuffix(name, Extension),
			Path: filepath.Join(dir, name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Menu builds a cancellable ui.Menu over entries, one item per save.
func Menu(entries []Entry) *ui.Menu {
	items := make([]ui.MenuItem, len(entries))
	for i, e := range entries {
		items[i] = ui.MenuItem{Label: e.Name}
	}
	return ui.NewMenu(items)
}

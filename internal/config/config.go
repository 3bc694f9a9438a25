// Package config builds a runtime.Config and the generation/storage
// parameters a CLI invocation needs from parsed flags, grounded on
// cmd/vi-fighter/main.go's flag.Bool/flag.Parse style.
package config

import (
	"flag"

	"github.com/pkg/errors"

	"github.com/brunoczim/thedes/genproc"
	"github.com/brunoczim/thedes/geometry"
	"github.com/brunoczim/thedes/runtime"
)

// Launch holds every flag-driven parameter for the `launch` subcommand.
type Launch struct {
	Debug       bool
	SaveDir     string
	Seed        genproc.Seed
	MapWidth    int
	MapHeight   int
	CacheChunks int
	Runtime     runtime.Config
}

// ParseLaunch parses args (excluding the subcommand word itself) into a
// Launch configuration, applying runtime.DefaultConfig for anything not
// flag-overridden.
func ParseLaunch(args []string) (Launch, error) {
	fs := flag.NewFlagSet("launch", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "enable debug logging to logs/thedes.log")
	saveDir := fs.String("save-dir", "saves", "directory holding .thd save files")
	seed := fs.Uint64("seed", 1, "world generator seed")
	width := fs.Int("map-width", 256, "generated map width, in cells")
	height := fs.Int("map-height", 256, "generated map height, in cells")
	cacheChunks := fs.Int("cache-chunks", 64, "number of chunks kept resident in the map LRU cache")

	if err := fs.Parse(args); err != nil {
		return Launch{}, errors.Wrap(err, "config: parse launch flags")
	}

	cfg := Launch{
		Debug:       *debug,
		SaveDir:     *saveDir,
		Seed:        genproc.Seed(*seed),
		MapWidth:    *width,
		MapHeight:   *height,
		CacheChunks: *cacheChunks,
		Runtime:     runtime.DefaultConfig(),
	}
	if err := cfg.Runtime.Validate(); err != nil {
		return Launch{}, err
	}
	return cfg, nil
}

// MapRect returns the generation rectangle implied by MapWidth/MapHeight,
// anchored at the origin.
func (l Launch) MapRect() geometry.Rect {
	return geometry.Rect{
		TopLeft: geometry.CoordPair{X: 0, Y: 0},
		Size:    geometry.CoordPair{X: geometry.Coord(l.MapWidth), Y: geometry.Coord(l.MapHeight)},
	}
}

// Serve holds every flag-driven parameter for the `serve` subcommand.
type Serve struct {
	Debug    bool
	BindAddr string
	SaveDir  string
}

// ParseServe parses args into a Serve configuration.
func ParseServe(args []string) (Serve, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "enable debug logging to logs/thedes.log")
	bindAddr := fs.String("bind-addr", "127.0.0.1:4000", "address the session listener binds")
	saveDir := fs.String("save-dir", "saves", "directory holding .thd save files")

	if err := fs.Parse(args); err != nil {
		return Serve{}, errors.Wrap(err, "config: parse serve flags")
	}
	return Serve{Debug: *debug, BindAddr: *bindAddr, SaveDir: *saveDir}, nil
}

// Command thedes is the CLI front-end: `launch` runs the terminal game
// client locally, `serve` binds a network session listener. Grounded on
// cmd/vi-fighter/main.go's flag parsing and cmd/maze-generator/main.go's
// single-binary-many-modes style.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/brunoczim/thedes/genproc"
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/internal/applog"
	"github.com/brunoczim/thedes/internal/config"
	"github.com/brunoczim/thedes/internal/netdraft"
	"github.com/brunoczim/thedes/internal/save"
	"github.com/brunoczim/thedes/progress"
	"github.com/brunoczim/thedes/runtime"
	"github.com/brunoczim/thedes/screen"
	"github.com/brunoczim/thedes/tile"
	"github.com/brunoczim/thedes/ui"
	"github.com/brunoczim/thedes/worldmap"
	"github.com/brunoczim/thedes/worldmap/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: thedes <launch|serve> [flags]")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "launch":
		err = runLaunch(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "thedes: unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "thedes: %+v\n", err)
		os.Exit(1)
	}
}

func runLaunch(args []string) error {
	cfg, err := config.ParseLaunch(args)
	if err != nil {
		return err
	}

	logFile, err := applog.Setup(cfg.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("launch: stdout is not a terminal")
	}

	if err := os.MkdirAll(cfg.SaveDir, 0755); err != nil {
		return errors.Wrap(err, "launch: create save directory")
	}

	db, err := store.Open(filepath.Join(cfg.SaveDir, "world.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	worldMap := worldmap.New(db.Tree("Map"), cfg.CacheChunks)

	device, err := screen.NewNative()
	if err != nil {
		return errors.Wrap(err, "launch: open screen device")
	}
	poller, ok := device.(screen.Pollable)
	if !ok {
		return errors.New("launch: screen device does not support raw event polling")
	}
	inDevice := input.NewTcellDevice(poller)
	defer inDevice.Close()

	if err := generateWorld(cfg, worldMap, device, inDevice); err != nil {
		return err
	}
	if err := worldMap.Flush(); err != nil {
		return errors.Wrap(err, "launch: flush generated world")
	}

	entries, err := save.Discover(cfg.SaveDir)
	if err != nil {
		return err
	}
	return runSaveMenu(cfg, entries, device, inDevice)
}

// generateWorld runs the map generator and a progress-bar UI
// concurrently, stopping the UI loop once the generator's progress
// reaches its goal or the player cancels with Esc.
func generateWorld(cfg config.Launch, worldMap *worldmap.Map, device screen.Device, inDevice input.Device) error {
	rt, err := runtime.New(device, inDevice, cfg.Runtime)
	if err != nil {
		return err
	}

	gen := genproc.New(genproc.Config{Seed: cfg.Seed, Rect: cfg.MapRect()})
	logger, monitor := progress.Open(gen.ProgressGoal())

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		_, genErr := gen.Execute(gctx, worldMap, logger)
		return genErr
	})
	g.Go(func() error {
		return rt.Run(progressHandler(monitor))
	})

	return g.Wait()
}

func progressHandler(monitor progress.Monitor) runtime.Handler {
	bar := ui.NewProgressBar(monitor)
	style := ui.ProgressBarStyle{
		Filled: tile.ColorPair{Foreground: tile.NewBasicColor(tile.Green), Background: tile.DefaultColorPair.Background},
		Empty:  tile.DefaultColorPair,
		Label:  tile.DefaultColorPair,
	}
	return func(tick *runtime.Tick) bool {
		for _, ev := range tick.Events {
			if ev.Kind == input.EventKey && ev.Key.MainKey == input.Esc {
				return false
			}
		}
		region := ui.Region{Canvas: tick.Canvas, Graphemes: tick.Graphemes, Size: tick.Canvas.Size()}
		bar.Draw(region, 0, style)
		return monitor.Read().Current < monitor.Goal()
	}
}

func runSaveMenu(cfg config.Launch, entries []save.Entry, device screen.Device, inDevice input.Device) error {
	rt, err := runtime.New(device, inDevice, cfg.Runtime)
	if err != nil {
		return err
	}

	menu := save.Menu(entries)
	style := ui.MenuStyle{Item: tile.DefaultColorPair, Cursor: tile.ColorPair{
		Foreground: tile.DefaultColorPair.Background,
		Background: tile.DefaultColorPair.Foreground,
	}}

	return rt.Run(func(tick *runtime.Tick) bool {
		done, err := menu.OnTick(tick.Events)
		if err != nil {
			return false
		}
		region := ui.Region{Canvas: tick.Canvas, Graphemes: tick.Graphemes, Size: tick.Canvas.Size()}
		menu.Draw(region, style)
		return !done
	})
}

func runServe(args []string) error {
	cfg, err := config.ParseServe(args)
	if err != nil {
		return err
	}

	logFile, err := applog.Setup(cfg.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	listener, err := netdraft.Listen(cfg.BindAddr)
	if err != nil {
		return err
	}
	defer listener.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("thedes: listening on %s\n", listener.Addr())

	for {
		sessionCh := make(chan netdraft.Session, 1)
		errCh := make(chan error, 1)
		go func() {
			s, err := listener.Accept()
			if err != nil {
				errCh <- err
				return
			}
			sessionCh <- s
		}()

		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return err
		case s := <-sessionCh:
			fmt.Printf("thedes: accepted session from %s\n", s.RemoteAddr())
			s.Close()
		}
	}
}

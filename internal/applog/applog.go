// Package applog configures process-wide logging, grounded on
// cmd/vi-fighter/main.go's setupLogging: logging is off by default
// (discarded), and a -debug flag switches it to a rotating file under
// logs/ so gameplay output never shares the terminal with the game's own
// screen rendering.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	dir         = "logs"
	fileName    = "thedes.log"
	maxFileSize = 10 * 1024 * 1024 // 10MB
)

// Setup configures the standard logger per debug, returning the open log
// file (nil if debug is false) for the caller to close on exit.
func Setup(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "applog: create log directory")
	}

	path := filepath.Join(dir, fileName)
	if err := rotateIfOversize(path); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "applog: open log file")
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== thedes started ===")
	return file, nil
}

// rotateIfOversize renames path aside with a timestamp suffix if it has
// grown past maxFileSize, matching the rotate-by-rename behavior the
// original logging setup uses.
func rotateIfOversize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "applog: stat log file")
	}
	if info.Size() <= maxFileSize {
		return nil
	}
	stamp := time.Now().Format("2006-01-02-15-04-05")
	rotated := filepath.Join(dir, fmt.Sprintf("thedes-%s.log", stamp))
	if err := os.Rename(path, rotated); err != nil {
		return errors.Wrap(err, "applog: rotate log file")
	}
	return nil
}

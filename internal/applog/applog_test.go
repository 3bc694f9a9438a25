package applog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupDisabledReturnsNoFile(t *testing.T) {
	file, err := Setup(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file != nil {
		t.Fatalf("expected nil file when debug is disabled")
	}
}

func TestSetupDebugCreatesLogFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	file, err := Setup(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file == nil {
		t.Fatalf("expected a log file when debug is enabled")
	}
	defer file.Close()

	if _, err := os.Stat(filepath.Join(tmp, dir, fileName)); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

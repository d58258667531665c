package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReportsStartupFailures(t *testing.T) {
	dir := t.TempDir()
	badMap := filepath.Join(dir, "bad.map")
	if err := os.WriteFile(badMap, []byte("111\n11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		config  string
		mapFile string
		prefix  string
	}{
		{"missing config", filepath.Join(dir, "missing.yaml"), "", "[Config]"},
		{"missing map", "config.yaml", filepath.Join(dir, "missing.map"), "[MapLoader]"},
		{"ragged map", "config.yaml", badMap, "[MapLoader]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.config, tt.mapFile)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("error %q should start with %s", err, tt.prefix)
			}
		})
	}

	err := run(filepath.Join(dir, "missing.yaml"), "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing config should wrap fs.ErrNotExist, got %v", err)
	}
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/ui"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Open(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	mode, err := cfg.ListMode()
	if err != nil {
		t.Fatalf("ListMode: %v", err)
	}
	if mode != list.Bidirectional {
		t.Errorf("ListMode() = %s, expected %s", mode, list.Bidirectional)
	}
	if cfg.ColorScheme != ui.DefaultColorScheme {
		t.Errorf("ColorScheme = %d, expected %d", cfg.ColorScheme, ui.DefaultColorScheme)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	cfg, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	cfg.SetListMode(list.ForwardOnly)
	cfg.ColorScheme = ui.DarkColorScheme
	cfg.SetLastSeed("items.txt")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open after Save: %v", err)
	}
	if mode, _ := reloaded.ListMode(); mode != list.ForwardOnly {
		t.Errorf("ListMode() = %s, expected %s", mode, list.ForwardOnly)
	}
	if reloaded.ColorScheme != ui.DarkColorScheme {
		t.Errorf("ColorScheme = %d, expected %d", reloaded.ColorScheme, ui.DarkColorScheme)
	}
	if !filepath.IsAbs(reloaded.LastSeed) || filepath.Base(reloaded.LastSeed) != "items.txt" {
		t.Errorf("LastSeed = %q, expected an absolute path to items.txt", reloaded.LastSeed)
	}
	if reloaded.ConfigFile != path {
		t.Errorf("ConfigFile = %q, expected %q", reloaded.ConfigFile, path)
	}
}

func TestBadModeIsReported(t *testing.T) {
	cfg := &Config{Mode: "circular"}
	if _, err := cfg.ListMode(); err == nil {
		t.Errorf("ListMode() with %q returned nil error", cfg.Mode)
	}
}

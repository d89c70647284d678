package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOREMPICSUM_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://picsum.photos" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds = %d, want 15", cfg.API.TimeoutSeconds)
	}
	if cfg.Gallery.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.Gallery.BatchSize)
	}
	if cfg.Gallery.Width != 300 || cfg.Gallery.Height != 200 {
		t.Errorf("default filter = %dx%d, want 300x200", cfg.Gallery.Width, cfg.Gallery.Height)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[api]
base_url = "http://localhost:8080"
timeout_seconds = 3

[gallery]
batch_size = 5
width = 640
height = 480
blur = 2
greyscale = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOREMPICSUM_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Gallery.BatchSize != 5 {
		t.Errorf("BatchSize = %d, want 5", cfg.Gallery.BatchSize)
	}
	if !cfg.Gallery.Greyscale || cfg.Gallery.Blur != 2 {
		t.Errorf("filter overrides not applied: %+v", cfg.Gallery)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LOREMPICSUM_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("LOREMPICSUM_GALLERY_BATCH_SIZE", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gallery.BatchSize != 3 {
		t.Errorf("BatchSize = %d, want env override 3", cfg.Gallery.BatchSize)
	}
}

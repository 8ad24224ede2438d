package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	xdg := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"home default", "", filepath.Join(home, ".cache", "stackdeck")},
		{"xdg override", xdg, filepath.Join(xdg, "stackdeck")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenFileCacheMissingDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "absent"))
	fc, dir, err := openFileCache()
	if err != nil {
		t.Fatalf("openFileCache: %v", err)
	}
	if fc != nil {
		t.Error("expected no cache for a missing directory")
	}
	if filepath.Base(dir) != appName {
		t.Errorf("dir = %q, want it to end in %q", dir, appName)
	}
}

package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeRC(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, RCFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("ringsnake", nil, env(nil), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != DefaultAddr || cfg.ScreenSize != ScreenSize {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Echo || cfg.Dry || cfg.Mute {
		t.Errorf("switches on by default: %+v", cfg)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	home := writeRC(t, `
# device on the bench
addr = 10.0.0.2:9000
seed = 5
size = 480
echo = true
snapshots = ~/shots
`)

	cfg, err := LoadConfig("ringpaint", nil, env(nil), home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "10.0.0.2:9000" || cfg.Seed != 5 || cfg.ScreenSize != 480 || !cfg.Echo {
		t.Errorf("rc not applied: %+v", cfg)
	}
	if want := filepath.Join(home, "shots"); cfg.SnapshotDir != want {
		t.Errorf("snapshot dir = %q, want %q", cfg.SnapshotDir, want)
	}

	vars := map[string]string{"RING_ADDR": "10.0.0.3:9000", "RING_SEED": "6"}
	cfg, err = LoadConfig("ringpaint", nil, env(vars), home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "10.0.0.3:9000" || cfg.Seed != 6 {
		t.Errorf("env did not override rc: %+v", cfg)
	}

	args := []string{"-addr", "127.0.0.1:1", "-seed", "7", "-dry"}
	cfg, err = LoadConfig("ringpaint", args, env(vars), home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:1" || cfg.Seed != 7 || !cfg.Dry {
		t.Errorf("flags did not override env: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		rc   string
		env  map[string]string
		args []string
		want string
	}{
		{name: "rc without equals", rc: "addr 1.2.3.4:5\n", want: "expected key = value"},
		{name: "rc bad seed", rc: "seed = many\n", want: "seed"},
		{name: "env bad seed", env: map[string]string{"RING_SEED": "-1"}, want: "RING_SEED"},
		{name: "small window", args: []string{"-size", "100"}, want: "size 100"},
		{name: "addr without port", args: []string{"-addr", "localhost"}, want: "addr"},
		{name: "unknown flag", args: []string{"-bogus"}, want: "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := ""
			if tt.rc != "" {
				home = writeRC(t, tt.rc)
			}
			_, err := LoadConfig("ringsnake", tt.args, env(tt.env), home)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMissingRCIsFine(t *testing.T) {
	if _, err := LoadConfig("ringsnake", nil, env(nil), t.TempDir()); err != nil {
		t.Errorf("missing rc: %v", err)
	}
}

func TestSnapshotPath(t *testing.T) {
	cfg := DefaultConfig()
	if p, err := cfg.SnapshotPath("a.png"); err != nil || p != "a.png" {
		t.Errorf("no dir: %q %v", p, err)
	}
	cfg.SnapshotDir = filepath.Join(t.TempDir(), "nested", "dir")
	p, err := cfg.SnapshotPath("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.SnapshotDir); err != nil {
		t.Errorf("dir not created: %v", err)
	}
	if p != filepath.Join(cfg.SnapshotDir, "a.png") {
		t.Errorf("path = %q", p)
	}
}

package game

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ringgrid/internal/grid"
)

// Window defaults.
const (
	ScreenSize    = 960
	MinScreenSize = 4 * grid.Rings // keeps rings at least 2 px thick
)

// Tick periods.
const (
	DrawPeriod = 80 * time.Millisecond
	MovePeriod = 50 * time.Millisecond
)

// Snake constants.
const (
	MinSnakeRing     = 30 // keeps the snake off the crowded inner rings
	SnakeStartLength = 3
	SpawnAttempts    = 256
)

// Device link.
const (
	DefaultAddr = "192.168.43.183:12345"
	RCFile      = ".ringgridrc"
)

// Config holds the runtime settings shared by the front ends.
type Config struct {
	Addr        string // device host:port
	Seed        uint64
	ScreenSize  int
	Echo        bool // log every datagram as "<ring> <slice>"
	Dry         bool // record datagrams instead of sending them
	Mute        bool
	SnapshotDir string
}

// DefaultConfig returns the built-in settings with a clock-derived seed.
func DefaultConfig() *Config {
	return &Config{
		Addr:       DefaultAddr,
		Seed:       uint64(time.Now().UnixNano()),
		ScreenSize: ScreenSize,
	}
}

// LoadConfig layers, in increasing precedence: defaults, ~/.ringgridrc,
// RING_ADDR / RING_SEED from the environment, then command-line flags.
// An empty home skips the rc file.
func LoadConfig(name string, args []string, getenv func(string) string, home string) (*Config, error) {
	cfg := DefaultConfig()

	if home != "" {
		if err := cfg.loadRC(filepath.Join(home, RCFile), home); err != nil {
			return nil, err
		}
	}

	if v := getenv("RING_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("RING_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("RING_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "device address (host:port)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for snake placement")
	fs.IntVar(&cfg.ScreenSize, "size", cfg.ScreenSize, "window size in pixels")
	fs.BoolVar(&cfg.Echo, "echo", cfg.Echo, "log every datagram sent")
	fs.BoolVar(&cfg.Dry, "dry", cfg.Dry, "do not open the device link")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fs.StringVar(&cfg.SnapshotDir, "snapshots", cfg.SnapshotDir, "directory for PNG snapshots")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings a front end cannot run without.
func (c *Config) Validate() error {
	if c.ScreenSize < MinScreenSize {
		return fmt.Errorf("size %d: must be at least %d", c.ScreenSize, MinScreenSize)
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("addr %q: %w", c.Addr, err)
	}
	return nil
}

// SnapshotPath joins a file name onto the snapshot directory, creating it.
func (c *Config) SnapshotPath(file string) (string, error) {
	if c.SnapshotDir == "" {
		return file, nil
	}
	if err := os.MkdirAll(c.SnapshotDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(c.SnapshotDir, file), nil
}

func (c *Config) loadRC(path, home string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("%s:%d: expected key = value", path, lineNo)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "addr", "address":
			c.Addr = value
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s:%d: seed: %w", path, lineNo, err)
			}
			c.Seed = seed
		case "size", "screen_size":
			size, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s:%d: size: %w", path, lineNo, err)
			}
			c.ScreenSize = size
		case "echo":
			c.Echo = strings.EqualFold(value, "true")
		case "dry":
			c.Dry = strings.EqualFold(value, "true")
		case "mute":
			c.Mute = strings.EqualFold(value, "true")
		case "snapshots", "snapshot_dir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(home, strings.TrimPrefix(value, "~"))
			}
			c.SnapshotDir = value
		}
	}
	return scanner.Err()
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env        string
	DebugAddr  string // empty disables the /health + /metrics listener
	Seed       bool
	RosterPath string
	ClockSeed  int64
	Debounce   time.Duration
}

func Load() Config {
	cfg := Config{
		Env:        get("APP_ENV", "dev"),
		DebugAddr:  get("MOJO_DEBUG_ADDR", ""),
		Seed:       getBool("MOJO_SEED", true),
		RosterPath: get("MOJO_ROSTER", ""),
		ClockSeed:  getInt64("MOJO_CLOCK_SEED", time.Now().UnixNano()),
		Debounce:   time.Duration(getInt64("MOJO_DEBOUNCE_MS", 300)) * time.Millisecond,
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// rosterFile is the YAML shape of a custom seed roster.
type rosterFile struct {
	Usernames []string `yaml:"usernames"`
}

// LoadRoster reads a seed roster from a YAML file. Used by the demo
// bootstrap to re-skin the sample dataset; an absent path means "use the
// built-in roster".
func LoadRoster(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var rf rosterFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	if len(rf.Usernames) == 0 {
		return nil, fmt.Errorf("roster %s lists no usernames", path)
	}
	return rf.Usernames, nil
}

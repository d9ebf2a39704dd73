package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads envs once per process. A client machine usually has no .env at
// all, so a missing file is fine; explicit env vars still win.
func New() *Config {
	once.Do(func() {
		godotenv.Load("./.env")
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) APIBaseURL() string {
	if v := os.Getenv("HABITCTL_API_URL"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

func (c *Config) StateDir() string {
	if v := os.Getenv("HABITCTL_STATE_DIR"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".habitctl"
	}
	return filepath.Join(home, ".local", "state", "habitctl")
}

func (c *Config) RequestTimeout() time.Duration {
	if v := os.Getenv("HABITCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 15 * time.Second
}

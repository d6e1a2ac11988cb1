// internal/config/config.go
//
// Server configuration.
//
// Precedence (later wins):
//   1. compiled defaults (Default)
//   2. duelarcade/config.json found under the XDG config dirs
//   3. environment variables (PORT, LOG_LEVEL, CLIENT_ORIGIN, SEAT_SECRET,
//      DICTIONARY_DSN, WORDS_FILE, TICK_INTERVAL)
//
// main loads .env with godotenv before calling Load, so .env values count as
// environment variables.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
)

var cfgFile = "duelarcade/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// Duration reads either a Go duration string ("750ms") or whole seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string or a number: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

type Config struct {
	Port         string `json:"port"`
	LogLevel     string `json:"log_level"`
	ClientOrigin string `json:"client_origin"`

	// SeatSecret signs seat tokens. Tokens do not survive a restart with a
	// different secret.
	SeatSecret string `json:"seat_secret"`

	// DictionaryDSN selects a SQLite word table; WordsFile a plain list.
	// With neither set the embedded list is used.
	DictionaryDSN string `json:"dictionary_dsn"`
	WordsFile     string `json:"words_file"`

	// TickInterval is the wall-clock length of one game second.
	TickInterval Duration `json:"tick_interval"`
}

var Default = Config{
	Port:         "5175",
	LogLevel:     "info",
	ClientOrigin: "http://localhost:5173",
	SeatSecret:   "dev_secret_change_me",
	TickInterval: Duration(time.Second),
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	cfg := Default
	if path, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := readCfgFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return &InvalidConfig{"port must be set"}
	case c.SeatSecret == "":
		return &InvalidConfig{"seat secret must be set"}
	case c.TickInterval <= 0:
		return &InvalidConfig{"tick interval must be positive"}
	case c.DictionaryDSN != "" && c.WordsFile != "":
		return &InvalidConfig{"set either dictionary_dsn or words_file, not both"}
	}
	return nil
}

// Tick returns TickInterval as a time.Duration.
func (c *Config) Tick() time.Duration { return time.Duration(c.TickInterval) }

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for key, dst := range map[string]*string{
		"PORT":           &c.Port,
		"LOG_LEVEL":      &c.LogLevel,
		"CLIENT_ORIGIN":  &c.ClientOrigin,
		"SEAT_SECRET":    &c.SeatSecret,
		"DICTIONARY_DSN": &c.DictionaryDSN,
		"WORDS_FILE":     &c.WordsFile,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup("TICK_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("TICK_INTERVAL: %v", err)}
		}
		c.TickInterval = Duration(d)
	}
	return nil
}

func readCfgFile(path string, c *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

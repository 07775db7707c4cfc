package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/services"
	"github.com/dmitrijs2005/passkeeper/internal/filex"
)

const (
	ModeREPL = "repl"
	ModeTUI  = "tui"

	LogFileName = "passkeeper.log"
)

// Config holds runtime settings for the passkeeper client.
//
// Fields:
//   - DataDir: directory holding the vault database and the log file.
//   - DBFile: SQLite file name, relative to DataDir unless absolute.
//   - StorageKey: key/value slot the credential collection is stored under.
//   - Language: UI language tag ("en", "ru").
//   - Mode: frontend, "repl" or "tui".
//   - GeneratorLength, GeneratorClasses: initial generator settings;
//     classes use the letters l, u, d, s.
//   - OnCorrupt: what to do with unreadable stored data, "reset" or "fail".
//   - LogFormat, LogLevel: logging backend ("slog", "zerolog") and level.
//   - NotificationTTL, CopyNoticeTTL: how long notices stay on screen.
type Config struct {
	DataDir          string
	DBFile           string
	StorageKey       string
	Language         string
	Mode             string
	GeneratorLength  int
	GeneratorClasses string
	OnCorrupt        string
	LogFormat        string
	LogLevel         string
	NotificationTTL  time.Duration
	CopyNoticeTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = filex.DefaultDataDir()
	c.DBFile = "vault.db"
	c.StorageKey = "passwords"
	c.Language = "en"
	c.Mode = ModeREPL
	c.GeneratorLength = 12
	c.GeneratorClasses = "luds"
	c.OnCorrupt = string(services.CorruptReset)
	c.LogFormat = "slog"
	c.LogLevel = "info"
	c.NotificationTTL = 3 * time.Second
	c.CopyNoticeTTL = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeREPL, ModeTUI:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeREPL, ModeTUI, c.Mode)
	}
	if _, err := services.ParseCorruptPolicy(c.OnCorrupt); err != nil {
		return fmt.Errorf("on_corrupt: %w", err)
	}
	if c.GeneratorLength < 1 || c.GeneratorLength > generator.MaxLength {
		return fmt.Errorf("generator length must be 1..%d, got %d", generator.MaxLength, c.GeneratorLength)
	}
	if _, err := generator.ParseClasses(c.GeneratorClasses); err != nil {
		return fmt.Errorf("generator classes: %w", err)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if c.DataDir == "" || c.DBFile == "" {
		return fmt.Errorf("data dir and db file must not be empty")
	}
	if c.NotificationTTL <= 0 || c.CopyNoticeTTL <= 0 {
		return fmt.Errorf("notification durations must be positive")
	}
	return nil
}

// DBPath is the vault database location.
func (c *Config) DBPath() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

// LogPath is the log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}

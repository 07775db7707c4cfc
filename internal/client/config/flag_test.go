package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/services"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		return &Config{
			DataDir: "/data", DBFile: "vault.db", StorageKey: "passwords", Language: "en",
			Mode: ModeREPL, GeneratorLength: 12, GeneratorClasses: "luds", OnCorrupt: string(services.CorruptReset),
			LogFormat: "slog", LogLevel: "info", NotificationTTL: 3 * time.Second, CopyNoticeTTL: 2 * time.Second,
		}
	}
	with := func(f func(c *Config)) *Config {
		c := base()
		f(c)
		return c
	}

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 no flags", args: []string{"cmd"}, expected: base()},
		{name: "Test2 all flags", args: []string{"cmd", "-d", "/tmp/pk", "-k", "vault", "-l", "ru", "-m", "tui",
			"-g", "20", "-s", "ds", "-r", "fail", "-f", "zerolog", "-v", "debug"},
			expected: with(func(c *Config) {
				c.DataDir, c.StorageKey, c.Language, c.Mode = "/tmp/pk", "vault", "ru", ModeTUI
				c.GeneratorLength, c.GeneratorClasses, c.OnCorrupt = 20, "ds", string(services.CorruptFail)
				c.LogFormat, c.LogLevel = "zerolog", "debug"
			})},
		{name: "Test3 foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "--l=ru"},
			expected: with(func(c *Config) { c.Language = "ru" })},
		{name: "Test4 incorrect length", args: []string{"cmd", "-g", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := base()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/services"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"data_dir":          "/srv/pk",
		"storage_key":       "vault",
		"language":          "ru",
		"mode":              "tui",
		"generator_length":  24,
		"generator_classes": "",
		"on_corrupt":        "fail",
		"log_format":        "zerolog",
		"notification_ttl":  "5s",
		"copy_notice_ttl":   1500000000,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/srv/pk", cfg.DataDir)
		assert.Equal(t, "vault.db", cfg.DBFile, "absent field keeps default")
		assert.Equal(t, "vault", cfg.StorageKey)
		assert.Equal(t, "ru", cfg.Language)
		assert.Equal(t, ModeTUI, cfg.Mode)
		assert.Equal(t, 24, cfg.GeneratorLength)
		assert.Equal(t, "", cfg.GeneratorClasses)
		assert.Equal(t, string(services.CorruptFail), cfg.OnCorrupt)
		assert.Equal(t, "zerolog", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
		assert.Equal(t, 1500*time.Millisecond, cfg.CopyNoticeTTL)
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag, "-m", "repl"}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "vault", cfg.StorageKey)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		parseJson(cfg)

		assert.Empty(t, cmp.Diff(want, *cfg))
	})

	t.Run("json then flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag, "-l", "en"}

		cfg := LoadConfig()
		assert.Equal(t, "en", cfg.Language, "flags win over json")
		assert.Equal(t, "vault", cfg.StorageKey)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("invalid duration → panics", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "dur.json", map[string]any{"notification_ttl": "soon"})
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}

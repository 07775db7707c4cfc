package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
	"github.com/dmitrijs2005/passkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DataDir          string         `json:"data_dir"`
	DBFile           string         `json:"db_file"`
	StorageKey       string         `json:"storage_key"`
	Language         string         `json:"language"`
	Mode             string         `json:"mode"`
	GeneratorLength  int            `json:"generator_length"`
	GeneratorClasses *string        `json:"generator_classes"`
	OnCorrupt        string         `json:"on_corrupt"`
	LogFormat        string         `json:"log_format"`
	LogLevel         string         `json:"log_level"`
	NotificationTTL  timex.Duration `json:"notification_ttl"`
	CopyNoticeTTL    timex.Duration `json:"copy_notice_ttl"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.ConfigPath). If no
// path is given, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies the fields present in the file into the provided Config;
//     absent fields keep their earlier values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DBFile, jc.DBFile)
	setString(&cfg.StorageKey, jc.StorageKey)
	setString(&cfg.Language, jc.Language)
	setString(&cfg.Mode, jc.Mode)
	setString(&cfg.OnCorrupt, jc.OnCorrupt)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.GeneratorLength != 0 {
		cfg.GeneratorLength = jc.GeneratorLength
	}
	// an empty class string is meaningful (letters only)
	if jc.GeneratorClasses != nil {
		cfg.GeneratorClasses = *jc.GeneratorClasses
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.CopyNoticeTTL.Duration != 0 {
		cfg.CopyNoticeTTL = jc.CopyNoticeTTL.Duration
	}
}

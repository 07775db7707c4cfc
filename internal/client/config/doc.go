// Package config loads runtime configuration for the passkeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory (vault database and log file)
//	-k string   storage key of the credential collection
//	-l string   UI language (en, ru)
//	-m string   frontend: repl or tui
//	-g int      generated password length
//	-s string   generator classes, letters l, u, d, s
//	-r string   corrupt-data policy: reset or fail
//	-f string   log format: slog or zerolog
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "3s" or integer nanoseconds. Fields left out keep their
// earlier values:
//
//	{
//	  "data_dir": "/home/me/.config/passkeeper",
//	  "db_file": "vault.db",
//	  "storage_key": "passwords",
//	  "language": "en",
//	  "mode": "tui",
//	  "generator_length": 16,
//	  "generator_classes": "luds",
//	  "on_corrupt": "reset",
//	  "log_format": "zerolog",
//	  "log_level": "info",
//	  "notification_ttl": "3s",
//	  "copy_notice_ttl": "2s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

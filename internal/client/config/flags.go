package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory
//	-k string   storage key
//	-l string   UI language
//	-m string   frontend mode: repl or tui
//	-g int      generator length
//	-s string   generator classes (l, u, d, s)
//	-r string   corrupt-data policy: reset or fail
//	-f string   log format: slog or zerolog
//	-v string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l", "-m", "-g", "-s", "-r", "-f", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "UI language")
	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "frontend mode (repl|tui)")
	fs.IntVar(&cfg.GeneratorLength, "g", cfg.GeneratorLength, "generated password length")
	fs.StringVar(&cfg.GeneratorClasses, "s", cfg.GeneratorClasses, "generator classes (l,u,d,s)")
	fs.StringVar(&cfg.OnCorrupt, "r", cfg.OnCorrupt, "corrupt data policy (reset|fail)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (slog|zerolog)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

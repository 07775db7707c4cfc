package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/passkeeper/internal/client/cli"
	"github.com/dmitrijs2005/passkeeper/internal/client/clipboard"
	"github.com/dmitrijs2005/passkeeper/internal/client/config"
	"github.com/dmitrijs2005/passkeeper/internal/client/db"
	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/passkeeper/internal/client/services"
	"github.com/dmitrijs2005/passkeeper/internal/client/tui"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
	"github.com/dmitrijs2005/passkeeper/internal/filex"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := run(ctx, cfg); err != nil {
		stop()
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to prepare data dir: %w", err)
	}
	cfg.DataDir = dir

	logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, logFile)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	conn, err := db.InitDatabase(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	defer conn.Close()

	policy, err := services.ParseCorruptPolicy(cfg.OnCorrupt)
	if err != nil {
		return err
	}
	store := services.NewCredentialStore(kv.NewSQLiteRepository(conn), services.StoreOptions{
		Key:       cfg.StorageKey,
		OnCorrupt: policy,
		Logger:    logger,
	})
	if err := store.Load(ctx); err != nil {
		return err
	}

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return err
	}

	classes, err := generator.ParseClasses(cfg.GeneratorClasses)
	if err != nil {
		return err
	}

	ctrl, err := view.NewController(store, view.Options{
		Translator:    tr,
		Clipboard:     clipboard.NewSystem(),
		Logger:        logger,
		Length:        cfg.GeneratorLength,
		Classes:       classes,
		NoticeTTL:     cfg.NotificationTTL,
		CopyNoticeTTL: cfg.CopyNoticeTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to init controller: %w", err)
	}

	logger.Info(ctx, "passkeeper started", "mode", cfg.Mode, "records", store.Len(), "db", cfg.DBPath())

	// the frontend registers its notifier first so the notice is not lost
	announce := func() {
		if store.Recovered {
			ctrl.Announce(i18n.NoticeRecovered, map[string]any{"Key": store.QuarantineKey()})
		}
	}

	switch cfg.Mode {
	case config.ModeTUI:
		m := tui.New(ctx, ctrl, logger)
		announce()
		return tui.Run(ctx, m)
	default:
		app := cli.NewApp(ctrl, os.Stdin, os.Stdout, logger)
		announce()
		app.Run(ctx)
	}
	return nil
}

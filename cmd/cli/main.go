package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/dmitrijs2005/artgallery/internal/buildinfo"
	"github.com/dmitrijs2005/artgallery/internal/client/cli"
	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/config"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
	"github.com/dmitrijs2005/artgallery/internal/filex"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := loadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// loadConfig turns a configuration panic into a fatal log line.
func loadConfig() (cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("invalid configuration: %v", r)
		}
	}()
	return config.LoadConfig()
}

func openStore(ctx context.Context, dsn string) (session.Store, error) {
	if dsn == "" {
		return session.NewMemoryStore(nil), nil
	}
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	st, err := session.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	store, err := openStore(ctx, cfg.SessionDB)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	defer store.Close()

	c, err := client.NewHTTPClient(cfg.BaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}

	sessions := session.NewManager(store, cfg.SessionTTL, logger)
	svc := cli.Services{
		Auth:     services.NewAuthService(c, sessions),
		Arts:     services.NewArtService(c),
		Cart:     services.NewCartService(c),
		Wishlist: services.NewWishlistService(c),
		Users:    services.NewUserService(c),
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "art> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	// Readline blocks on input; closing it releases the REPL on shutdown.
	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	cli.NewApp(cfg, logger, svc, rl).Run(ctx)
	return nil
}

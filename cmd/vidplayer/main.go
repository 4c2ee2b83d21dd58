package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sonroyaalmerol/vidplayer/internal/config"
	"github.com/sonroyaalmerol/vidplayer/internal/handlers"
	"github.com/sonroyaalmerol/vidplayer/internal/library"
	"github.com/sonroyaalmerol/vidplayer/internal/player"
	"github.com/sonroyaalmerol/vidplayer/internal/repository"
	"github.com/sonroyaalmerol/vidplayer/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("session", uuid.NewString()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := repository.OpenDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	repo := repository.NewRepo(db)

	if cfg.CatalogFile != "" {
		if _, err := library.ImportFile(ctx, repo, cfg.CatalogFile); err != nil {
			log.Fatal(err)
		}
	}
	if n, err := repo.CountVideos(ctx); err != nil {
		slog.Warn("count videos failed", "err", err)
	} else {
		slog.Debug("database ready", "path", cfg.DatabasePath, "videos", n)
	}
	catalog, err := library.Load(ctx, repo)
	if err != nil {
		log.Fatal(err)
	}

	p := player.NewPlayer(catalog, utils.NewRand(cfg.RandomSeed))
	shell := handlers.NewShell(cfg, p)
	if err := shell.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kofikwar/gridiron/internal/cache/mem"
	"github.com/kofikwar/gridiron/internal/config"
	"github.com/kofikwar/gridiron/internal/logger"
	"github.com/kofikwar/gridiron/internal/migrate"
	"github.com/kofikwar/gridiron/internal/narrative"
	"github.com/kofikwar/gridiron/internal/notify/telegram"
	"github.com/kofikwar/gridiron/internal/rng"
	"github.com/kofikwar/gridiron/internal/season"
	"github.com/kofikwar/gridiron/internal/service"
	"github.com/kofikwar/gridiron/internal/storage"
	"github.com/kofikwar/gridiron/internal/storage/sqlite"
	"github.com/kofikwar/gridiron/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sqlite.Open(cfg.Game.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate.UpGameDB(db); err != nil {
		return err
	}
	store := sqlite.New(db)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rng.RandomSeed()
	}
	src := rng.New(seed)

	narr := narrative.NewGenerator(nil, 0, log.WithField("name", "narrative"))
	engine := season.New(src, narr, nil, log)

	var notifier service.Notifier
	var bot *telegram.Bot
	if cfg.TgBot.Enabled {
		bot, err = telegram.New(cfg.TgBot.ApiToken, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
		notifier = bot
	}

	game := service.New(engine, store, mem.New(), notifier, src, log)
	if err := game.Load(); err != nil && !errors.Is(err, storage.ErrNoSave) {
		return err
	}

	server, err := web.New(game, cfg.Server)
	if err != nil {
		return err
	}
	log.WithField("port", cfg.Server.Port).Info("starting server")
	return server.Serve()
}

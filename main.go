package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/cli"
	"github.com/robalobadob/scramble/internal/config"
	"github.com/robalobadob/scramble/internal/db"
	"github.com/robalobadob/scramble/internal/httpserver"
	"github.com/robalobadob/scramble/internal/spell"
	"github.com/robalobadob/scramble/internal/store"
	"github.com/robalobadob/scramble/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogging(cfg)

	list := words.Load(cfg.WordsFile)
	dict, err := spell.LoadDictionary(cfg.DictionaryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	log.Info().Int("baseWords", len(list)).Int("dictionary", dict.Len()).Msg("word lists loaded")

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "serve":
		serve(cfg, list, dict)
	case "play":
		p := cli.NewPlayer(os.Stdin, os.Stdout, list, dict)
		p.Suggester = dict
		if err := p.Run(); err != nil {
			log.Fatal().Err(err).Msg("play")
		}
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command (want serve or play)")
	}
}

func serve(cfg config.Config, list []string, dict *spell.Dictionary) {
	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer sqlDB.Close()
	if err := db.Migrate(sqlDB); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(cfg, httpserver.Deps{
		Rounds:    store.NewMemoryStore(),
		DB:        sqlDB,
		Words:     list,
		Checker:   dict,
		Suggester: dict,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Msg("starting scramble server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

package main

import (
	"log"
	"os"
	"path/filepath"

	"salonbook/auth"
	"salonbook/config"
	"salonbook/routes"
	"salonbook/storage"
	"salonbook/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger := config.NewLogger(cfg)

	dbPath := ""
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			logger.Fatal().Err(err).Msg("creating data dir")
		}
		dbPath = filepath.Join(cfg.DataDir, "salonbook.db")
	} else {
		dbPath, err = storage.DBPath()
		if err != nil {
			logger.Fatal().Err(err).Msg("resolving data dir")
		}
	}

	kv, err := storage.OpenSQLite(dbPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", dbPath).Msg("opening local storage")
	}
	logger.Info().Str("path", dbPath).Msg("local storage ready")

	st := store.New(kv, logger)
	manager := auth.NewManager(logger)
	st.Bind(manager)

	r := routes.SetupRouter(routes.Deps{
		Config:   cfg,
		Log:      logger,
		Store:    st,
		Auth:     manager,
		Verifier: auth.NewVerifier(cfg.GoogleClientID),
	})

	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

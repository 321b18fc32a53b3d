package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"socialCPT/internal/config"
	"socialCPT/internal/database"
	"socialCPT/internal/repository"
	"socialCPT/internal/service"
	"socialCPT/internal/storage"
)

// App connects the database, migrates it, optionally connects MinIO and
// wires repositories and services. Storage failures are not fatal: the
// service starts with image uploads disabled.
func App(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*database.DB, *repository.Repository, *service.Service, error) {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		minioClient, err := storage.NewMinIOClient(minioCtx, cfg.MinIO, log)
		cancel()
		if err != nil {
			log.WithField("error", err.Error()).Warn("MinIO unavailable, image uploads disabled")
		} else {
			store = minioClient
		}
	} else {
		log.Info("MinIO disabled, image uploads disabled")
	}

	tokens, err := service.NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenDuration, time.Now, log)
	if err != nil {
		_ = db.CloseDB()
		return nil, nil, nil, fmt.Errorf("failed to init token service: %w", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, tokens, store, db, log)

	return db, repo, services, nil
}

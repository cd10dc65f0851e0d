// Package setup wires concrete implementations together. It is the only
// place that knows about every layer at once.
package setup

import (
	"context"
	"fmt"

	"github.com/vmss-tech/vmss-backend/internal/config"
	"github.com/vmss-tech/vmss-backend/internal/handler"
	"github.com/vmss-tech/vmss-backend/internal/jwt"
	"github.com/vmss-tech/vmss-backend/internal/middleware"
	"github.com/vmss-tech/vmss-backend/internal/service"
	"github.com/vmss-tech/vmss-backend/internal/storage/pg"
	"github.com/vmss-tech/vmss-backend/internal/storage/s3"
)

type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

func New(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg.Pg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := storage.Migrate(ctx); err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	objectStorage, err := s3.New(ctx, cfg.S3)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	jwtService := jwt.New(cfg.JwtSecret, cfg.JwtTTL)

	h := handler.New(
		service.NewAuth(storage, jwtService),
		service.NewCourse(storage),
		service.NewInstructor(storage),
		service.NewContact(storage),
		service.NewUpload(objectStorage, cfg.Upload),
		cfg,
	)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}

func (d *Dependencies) Close() error {
	return d.Storage.Close()
}

package setup

import (
	"context"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/config"
	"github.com/pawtime-dev/pawtime/internal/handler"
	"github.com/pawtime-dev/pawtime/internal/jwt"
	"github.com/pawtime-dev/pawtime/internal/middleware"
	"github.com/pawtime-dev/pawtime/internal/service"
	"github.com/pawtime-dev/pawtime/internal/storage/pg"
	"github.com/pawtime-dev/pawtime/internal/storage/s3"
)

type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *middleware.Auth
	Jwt     jwt.Service
}

func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	media, err := s3.New(cfg.Private.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}
	if err := media.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket: %w", err)
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	authService := service.NewAuth(storage, jwtService, cfg.Public.BcryptCost)
	boardService := service.NewBoard(storage)
	postService := service.NewPost(storage)
	commentService := service.NewComment(storage)
	likeService := service.NewLike(storage)
	profileService := service.NewProfile(
		storage, media,
		cfg.Public.DefaultProfileImg,
		cfg.Public.MaxImageBytes,
		cfg.Public.MaxImageDimension,
	)

	h := handler.New(authService, boardService, postService, commentService, likeService, profileService, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Auth:    middleware.NewAuth(jwtService),
		Jwt:     jwtService,
	}, nil
}

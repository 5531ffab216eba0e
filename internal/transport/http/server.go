package http

import (
	"fmt"
	"log"
	stdhttp "net/http"

	"activies-backend/internal/config"
	"activies-backend/internal/database"
	"activies-backend/internal/dispatch"
	"activies-backend/internal/hash"
	"activies-backend/internal/repository"
	"activies-backend/internal/service"
	"activies-backend/internal/transport/ws"
)

// Run owns the process lifetime: config, the database handle, and the
// wired component graph.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authKeyRepo := repository.NewAuthKeyRepository(db)
	postRepo := repository.NewPostRepository(db)

	userService := service.NewUserService(userRepo, hash.New(cfg.PasswordSecret))
	authService := service.NewAuthService(authKeyRepo)
	postService := service.NewPostService(postRepo)

	dispatcher := dispatch.NewDispatcher(userService, authService, postService)
	router := NewRouter(ws.NewHandler(dispatcher))

	log.Printf("Starting server on :%s", cfg.ServerPort)
	return stdhttp.ListenAndServe(":"+cfg.ServerPort, router)
}

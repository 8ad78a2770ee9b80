package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/recipebox/recipebox-go/internal/config"
	"github.com/recipebox/recipebox-go/internal/handler"
	"github.com/recipebox/recipebox-go/internal/repository"
	"github.com/recipebox/recipebox-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	recipeRepo := repository.NewRecipeRepository(store)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	recipeService := service.NewRecipeService(recipeRepo, userRepo)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r := handler.NewRouter(authHandler, recipeHandler, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

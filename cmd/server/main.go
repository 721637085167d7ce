package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vedran77/tick/internal/config"
	"github.com/vedran77/tick/internal/database"
	postgresrepo "github.com/vedran77/tick/internal/repository/postgres"
	"github.com/vedran77/tick/internal/service"
	"github.com/vedran77/tick/internal/transport/http/handlers"
	"github.com/vedran77/tick/pkg/logger"
)

func main() {
	// best-effort: a missing .env just means real env vars or defaults
	_ = godotenv.Load()

	lg, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		sugar.Fatalf("db migrate: %v", err)
	}
	sugar.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	taskRepo := postgresrepo.NewTaskRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	taskService := service.NewTaskService(taskRepo)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handlers.NewRouter(sugar, authService, taskService),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		sugar.Infof("starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Warnf("server shutdown: %v", err)
	}
}

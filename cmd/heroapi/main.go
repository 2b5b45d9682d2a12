package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"heroes/internal/app"
	"heroes/internal/logging"
)

func main() {
	_ = godotenv.Load() // load .env if present

	var files []string
	if len(os.Args) > 1 {
		files = os.Args[1:]
	}
	cfg, err := app.LoadConfig(files...)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New("heroapi", cfg.App.Env, cfg.App.LogLevel)

	srv, err := app.NewServer(cfg, logger)
	if err != nil {
		logger.Fatalf("server: %v", err)
	}

	go func() {
		logger.Infof("heroes API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

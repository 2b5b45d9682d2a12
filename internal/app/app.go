package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"heroes/internal/heroapi"
)

// NewServer builds the development API server from cfg. The store is seeded
// from cfg.Server.SeedFile, or the default heroes when unset.
func NewServer(cfg *Config, logger logrus.FieldLogger) (*http.Server, error) {
	seed, err := heroapi.LoadSeed(cfg.Server.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	if cfg.App.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := heroapi.NewRouter(heroapi.Options{
		Store:       heroapi.NewStore(seed),
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins(),
		AccessLog:   cfg.Server.AccessLog,
	})

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

package heroapi

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Options configures NewRouter.
type Options struct {
	Store  *Store
	Logger logrus.FieldLogger

	// CORSOrigins lists the browser origins allowed to call the API. Empty or
	// "*" allows any origin.
	CORSOrigins []string

	// AccessLog enables one log line per request.
	AccessLog bool
}

// NewRouter builds the gin engine serving the heroes API.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	store := opts.Store
	if store == nil {
		store = NewStore(DefaultHeroes())
	}
	metrics := NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	if opts.AccessLog {
		r.Use(AccessLog(logger))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	NewHandler(store, logger).Register(r.Group("/api"))
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

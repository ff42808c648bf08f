package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"capper-server/internal/config"
	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/conversation"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/user"
	"capper-server/internal/infrastructure/metrics"
	"capper-server/internal/interfaces/httpserver/handlers"
	"capper-server/internal/interfaces/httpserver/routes"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg         *config.Config
	engine      *gin.Engine
	log         zerolog.Logger
	handlerProv *handlers.Provider
	routeProv   *routes.Provider
}

// New constructs the HTTP server with default middleware and routes.
func New(
	cfg *config.Config,
	log zerolog.Logger,
	conversationService conversation.Service,
	userService user.Service,
	catalogService catalog.Service,
	knowledgeService knowledge.Service,
) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(requestMetrics())

	handlerProvider := handlers.NewProvider(conversationService, userService, catalogService, knowledgeService, log)
	routeProvider := routes.NewProvider(handlerProvider)

	registerPublicRoutes(engine, cfg)
	routeProvider.Register(engine)

	return &HttpServer{
		cfg:         cfg,
		engine:      engine,
		log:         log,
		handlerProv: handlerProvider,
		routeProv:   routeProvider,
	}
}

// Engine exposes the underlying gin engine for tests.
func (s *HttpServer) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func registerPublicRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"status":  "ok",
		})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// requestMetrics records per-route request counts and latency.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Package server exposes resume screening over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/pdftext"
	"github.com/spigell/resume-screener/internal/screening"
)

const (
	defaultAddr           = ":5000"
	defaultMaxUploadBytes = 10 << 20
	shutdownTimeout       = 5 * time.Second

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Config holds server configuration.
type Config struct {
	Addr           string   `mapstructure:"addr"`
	MaxUploadMB    int64    `mapstructure:"max-upload-mb"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

func (c Config) maxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return defaultMaxUploadBytes
	}
	return c.MaxUploadMB << 20
}

// Server serves the screening API and the browser test page.
type Server struct {
	cfg       Config
	scorer    *screening.Scorer
	extractor pdftext.Extractor
	logger    *zap.Logger
	engine    *gin.Engine
}

func New(cfg Config, scorer *screening.Scorer, extractor pdftext.Extractor, logger *zap.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:       cfg,
		scorer:    scorer,
		extractor: extractor,
		logger:    logger,
	}

	engine := gin.New()
	engine.Use(requestID(), requestLogger(logger), recovery(logger), cors.New(corsConfig(cfg.AllowedOrigins)))
	engine.GET("/", s.handleHome)
	engine.GET("/test", s.handleTestPage)
	engine.POST("/screen", s.handleScreen)
	s.engine = engine

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestID keeps the caller's X-Request-ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			zap.String(logger.FieldRequestID, c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic while handling request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}

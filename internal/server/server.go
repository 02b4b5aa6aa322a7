package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"

	"sweet-booking/internal/auth"
	"sweet-booking/internal/config"
	"sweet-booking/internal/data"
	"sweet-booking/internal/linebot"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/middlewares"
	"sweet-booking/internal/storage"
	"sweet-booking/internal/token"
	"sweet-booking/internal/version"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	limiter     *middlewares.RateLimiter
	httpServer  *http.Server
	debugServer *http.Server
	database    *storage.DatabaseProvider
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	codec, err := token.NewCodec(cfg.Auth.JWTSecret)
	if err != nil {
		cancel()
		return nil, err
	}

	database, err := storage.NewDatabaseProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize database provider", "error", err)
		cancel()
		return nil, err
	}

	logger.Debug("Running database migrations")
	if err := database.RunMigrations(); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		cancel()
		return nil, err
	}
	logger.Debug("Database migrations completed")

	cache, err := data.NewCacheProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	if redisCache, ok := cache.(*data.RedisCache); ok {
		collector := redisprometheus.NewCollector(metrics.Namespace, "cache", redisCache.Client())
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis cache collector: already registered", "error", err)
		}
	}

	lineProvider := auth.NewLineProvider(cfg)

	var bot *linebot.Bot
	if cfg.Line.Messaging != nil {
		bot, err = linebot.New(cfg, database, logger)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to set up line bot: %w", err)
		}
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, database, cache, lineProvider, codec, bot)

	limiter := middlewares.NewRateLimiter(middlewares.DefaultRateLimiterConfig())

	router := setupRouter(appCtx, limiter)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		limiter:     limiter,
		httpServer:  httpServer,
		debugServer: debugServer,
		database:    database,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "version", version.Full())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.limiter.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.database.Close()

	s.logger.Info("Server Exited")
	return nil
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/config"
	apihttp "github.com/teefisher2k20/langchain/internal/http"
	"github.com/teefisher2k20/langchain/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var chatLimiter service.ChatRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, chat rate limiting disabled", zap.Error(err))
		} else {
			chatLimiter = service.NewRedisChatRateLimiter(redisClient, cfg.ChatRateWindow, cfg.ChatRateLimit)
			logger.Info("chat rate limiting enabled",
				zap.Int("limit", cfg.ChatRateLimit),
				zap.Duration("window", cfg.ChatRateWindow),
			)
		}
		cancel()
	}

	chatSvc := service.NewChatService(chatLimiter, nil)
	healthSvc := service.NewHealthService(nil)

	pageHandler := apihttp.NewPageHandler()
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	apiHandler := apihttp.NewAPIHandler(service.ModelCatalog{}, healthSvc)
	router, err := apihttp.NewRouter(logger, *cfg, pageHandler, chatHandler, apiHandler)
	if err != nil {
		logger.Fatal("router init", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr()), zap.Bool("debug", cfg.Debug))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

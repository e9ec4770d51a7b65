package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"lg/coach-api/internal/logger"
)

// newServer builds the gin router with every route and wraps it in CORS.
func newServer(h *Handler, origins []string) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router, h.authMiddleware())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(router)
}

// requestLogger logs one line per request through zap.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Env); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := getDBPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Error("database unavailable", zap.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	h := newHandler(pool)

	job, err := startSnapshotJob(h, cfg.SnapshotSchedule)
	if err != nil {
		logger.Error("snapshot job not started", zap.Error(err))
		os.Exit(1)
	}
	defer job.Stop()

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := http.ListenAndServe(":"+cfg.Port, newServer(h, cfg.CORSOrigins)); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

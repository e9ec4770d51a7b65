package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/coach-api/internal/logger"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	db        *pgxpool.Pool
	profiles  profileStore
	snapshots snapshotStore
	now       func() time.Time // overridable for tests
}

func newHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		db:        db,
		profiles:  &pgProfileStore{db: db},
		snapshots: &pgSnapshotStore{db: db},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Scan errors usually mean a struct/column mismatch, so they are logged.
func queryOne[T any](pool *pgxpool.Pool, ctx context.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logger.Error("[queryOne] query error", zap.Error(err))
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error("[queryOne] scan error", zap.Error(err))
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, ctx context.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logger.Error("[queryMany] query error", zap.Error(err))
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Error("[queryMany] scan error", zap.Error(err))
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. A pool (not a single conn) survives
// the provider closing idle connections.
func getDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after migrations.
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router. auth guards every
// route outside the public set.
func (h *Handler) registerRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	// Public routes
	router.POST("/api/login", h.login)
	router.GET("/api/modes", h.getModes)
	router.POST("/api/plan/preview", h.previewPlan)

	// Authenticated routes
	api := router.Group("/api", auth)
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/plan", h.getPlan)
	api.GET("/plan/export.xlsx", h.exportPlan)
	api.GET("/plan/history", h.getPlanHistory)
	api.GET("/daily-log", h.getDailyLog)
	api.POST("/daily-log", h.upsertDailyLog)
	api.DELETE("/daily-log/:id", h.deleteDailyLog)
	api.GET("/daily-log/adherence", h.getAdherence)
	api.POST("/exercise/burn", h.estimateBurn)
}

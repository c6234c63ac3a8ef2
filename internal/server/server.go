// Package server exposes the shared vote aggregate as a JSON REST API:
// one vote upsert, per-word stats, and the two community rankings.
package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/example/wordomikuji/internal/logger"
	"github.com/example/wordomikuji/pkg/models"
)

// StatsStore is the storage the API runs on
type StatsStore interface {
	ApplyVote(ctx context.Context, wordID string, knows bool) error
	GetByWordID(ctx context.Context, wordID string) (*models.WordStats, error)
	UnknownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error)
	KnownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error)
}

// Config tunes the HTTP surface
type Config struct {
	CORSOrigin string
}

// Server wires the handlers to the store
type Server struct {
	log   *logger.Logger
	stats StatsStore
}

// New builds the gin engine with all routes mounted
func New(log *logger.Logger, stats StatsStore, cfg Config) *gin.Engine {
	s := &Server{log: log, stats: stats}

	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigin != "" {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	r.Use(cors.New(corsCfg))

	r.GET("/", s.handleRoot)
	r.GET("/healthcheck", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/vote", s.handleVote)
		api.GET("/stats/:wordId", s.handleStats)
		api.GET("/ranking/unknown", s.handleRanking(s.stats.UnknownRanking))
		api.GET("/ranking/known", s.handleRanking(s.stats.KnownRanking))
	}

	return r
}

package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/wordomikuji/pkg/models"
)

// Limit bounds for the ranking endpoints. Anything missing, unparsable or
// out of range falls back to the default.
const (
	defaultRankingLimit = 20
	minRankingLimit     = 1
	maxRankingLimit     = 100
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "一語福引 API"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type voteRequest struct {
	WordID string `json:"wordId"`
	Knows  *bool  `json:"knows"`
}

type voteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// handleVote records one vote. Malformed input is a 400; a storage failure
// is a success:false body, so a client can tell "you sent garbage" apart
// from "the tally is down".
func (s *Server) handleVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WordID == "" || req.Knows == nil {
		c.JSON(http.StatusBadRequest, voteResponse{Success: false, Error: "Invalid request"})
		return
	}

	if err := s.stats.ApplyVote(c.Request.Context(), req.WordID, *req.Knows); err != nil {
		s.log.Error("vote submission failed", "wordId", req.WordID, "error", err)
		c.JSON(http.StatusOK, voteResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, voteResponse{Success: true})
}

type statsResponse struct {
	WordID       string  `json:"wordId"`
	KnowCount    int     `json:"knowCount"`
	UnknownCount int     `json:"unknownCount"`
	KnowRate     float64 `json:"knowRate"`
	UnknownRate  float64 `json:"unknownRate"`
}

func (s *Server) handleStats(c *gin.Context) {
	wordID := c.Param("wordId")

	stats, err := s.stats.GetByWordID(c.Request.Context(), wordID)
	if err != nil {
		s.log.Error("stats lookup failed", "wordId", wordID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		WordID:       stats.WordID,
		KnowCount:    stats.KnowCount,
		UnknownCount: stats.UnknownCount,
		KnowRate:     stats.KnowRate(),
		UnknownRate:  stats.UnknownRate(),
	})
}

type rankingQuery func(ctx context.Context, limit int) ([]models.RankingEntry, error)

func (s *Server) handleRanking(query rankingQuery) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseLimit(c.Query("limit"))

		entries, err := query(c.Request.Context(), limit)
		if err != nil {
			s.log.Error("ranking query failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if entries == nil {
			entries = []models.RankingEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return defaultRankingLimit
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < minRankingLimit || parsed > maxRankingLimit {
		return defaultRankingLimit
	}
	return parsed
}

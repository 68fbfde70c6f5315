package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"paw-match/internal/sentiment"
	"paw-match/internal/service"
)

const (
	defaultFeedLimit    = 20
	defaultMatchLimit   = 10
	defaultSimilarLimit = 10
)

// MatchHandler expone feed, rankings y el endpoint de sentimiento.
type MatchHandler struct {
	logger   *zap.Logger
	matchSvc *service.MatchService
	analyzer sentiment.Analyzer
}

func NewMatchHandler(logger *zap.Logger, matchSvc *service.MatchService, analyzer sentiment.Analyzer) *MatchHandler {
	return &MatchHandler{
		logger:   logger,
		matchSvc: matchSvc,
		analyzer: analyzer,
	}
}

// ForYouFeed maneja GET /dogs/:id/feed.
func (h *MatchHandler) ForYouFeed(c *gin.Context) {
	dogID := c.Param("id")
	limit := queryInt(c, "limit", defaultFeedLimit)

	feed, err := h.matchSvc.ForYouFeed(c.Request.Context(), dogID, limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("feed failed", zap.Error(err), zap.String("dog_id", dogID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": feed})
}

// TopMatches maneja GET /dogs/:id/matches.
func (h *MatchHandler) TopMatches(c *gin.Context) {
	dogID := c.Param("id")
	limit := queryInt(c, "limit", defaultMatchLimit)

	matches, err := h.matchSvc.TopMatches(c.Request.Context(), dogID, limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("matches failed", zap.Error(err), zap.String("dog_id", dogID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not rank matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// SimilarDogs maneja GET /dogs/:id/similar usando el índice vectorial.
func (h *MatchHandler) SimilarDogs(c *gin.Context) {
	dogID := c.Param("id")
	k := queryInt(c, "k", defaultSimilarLimit)

	dogs, err := h.matchSvc.SimilarDogs(c.Request.Context(), dogID, k)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("similar search failed", zap.Error(err), zap.String("dog_id", dogID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar dogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dogs": dogs})
}

// AnalyzeSentiment maneja POST /sentiment. Útil para inspeccionar qué
// puntaje recibiría un conjunto de comentarios.
func (h *MatchHandler) AnalyzeSentiment(c *gin.Context) {
	var req struct {
		Comments []string `json:"comments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	avg := h.analyzer.Average(c.Request.Context(), req.Comments)
	c.JSON(http.StatusOK, gin.H{"averageSentiment": avg})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paw-match/internal/domain"
	"paw-match/internal/repository"
)

// BreedHandler expone el catálogo de razas.
type BreedHandler struct {
	logger *zap.Logger
	breeds repository.BreedRepository
}

func NewBreedHandler(logger *zap.Logger, breeds repository.BreedRepository) *BreedHandler {
	return &BreedHandler{
		logger: logger,
		breeds: breeds,
	}
}

// ListBreeds maneja GET /breeds con búsqueda opcional por ?name=.
func (h *BreedHandler) ListBreeds(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))

	var (
		breeds []domain.Breed
		err    error
	)
	if name != "" {
		breeds, err = h.breeds.Search(c.Request.Context(), name)
	} else {
		breeds, err = h.breeds.List(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("list breeds failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list breeds"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeds": breeds})
}

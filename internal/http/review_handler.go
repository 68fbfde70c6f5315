package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"paw-match/internal/repository"
	"paw-match/internal/service"
)

// ReviewHandler mantiene dependencias para endpoints de reseñas.
type ReviewHandler struct {
	logger    *zap.Logger
	reviewSvc *service.ReviewService
	reviews   repository.ReviewRepository
}

func NewReviewHandler(logger *zap.Logger, reviewSvc *service.ReviewService, reviews repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{
		logger:    logger,
		reviewSvc: reviewSvc,
		reviews:   reviews,
	}
}

// CreateReview maneja POST /reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	claims, ok := GetOwnerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return
	}

	var req struct {
		DogID   string `json:"dog_id" binding:"required"`
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	review, err := h.reviewSvc.Create(c.Request.Context(), service.CreateReviewInput{
		DogID:   req.DogID,
		OwnerID: claims.OwnerID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, service.ErrOwnReview):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot review your own dog"})
		case errors.Is(err, repository.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"error": "already reviewed this dog"})
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
		default:
			h.logger.Error("create review failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// ListByDog maneja GET /dogs/:id/reviews.
func (h *ReviewHandler) ListByDog(c *gin.Context) {
	dogID := c.Param("id")

	reviews, err := h.reviews.ListByDog(c.Request.Context(), dogID)
	if err != nil {
		h.logger.Error("list reviews failed", zap.Error(err), zap.String("dog_id", dogID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

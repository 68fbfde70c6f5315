package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paw-match/internal/service"
)

// OwnerHandler mantiene dependencias para endpoints de dueños y auth.
type OwnerHandler struct {
	logger   *zap.Logger
	ownerSvc *service.OwnerService
	jwtSvc   *service.JWTService
}

func NewOwnerHandler(logger *zap.Logger, ownerSvc *service.OwnerService, jwtSvc *service.JWTService) *OwnerHandler {
	return &OwnerHandler{
		logger:   logger,
		ownerSvc: ownerSvc,
		jwtSvc:   jwtSvc,
	}
}

// Register maneja POST /owners.
func (h *OwnerHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
		Age      *int   `json:"age"`
		Gender   string `json:"gender"`
		About    string `json:"about"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	owner, err := h.ownerSvc.Register(c.Request.Context(), service.RegisterOwnerInput{
		Email:    req.Email,
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		About:    req.About,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		case errors.Is(err, service.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		default:
			h.logger.Error("register owner failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register owner"})
		}
		return
	}

	pair, err := h.jwtSvc.GeneratePair(owner)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"owner": owner, "tokens": pair})
}

// Login maneja POST /auth/login.
func (h *OwnerHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	owner, err := h.ownerSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		}
		return
	}

	pair, err := h.jwtSvc.GeneratePair(owner)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": owner, "tokens": pair})
}

// Refresh maneja POST /auth/refresh.
func (h *OwnerHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.jwtSvc.RefreshPair(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}

// Logout maneja POST /auth/logout.
func (h *OwnerHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.jwtSvc.RevokeRefresh(req.RefreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"paw-match/internal/domain"
	"paw-match/internal/repository"
	"paw-match/internal/service"
)

// DogHandler mantiene dependencias para endpoints de perros.
type DogHandler struct {
	logger   *zap.Logger
	dogs     repository.DogRepository
	embedder service.TraitEmbedder
}

func NewDogHandler(logger *zap.Logger, dogs repository.DogRepository, embedder service.TraitEmbedder) *DogHandler {
	return &DogHandler{
		logger:   logger,
		dogs:     dogs,
		embedder: embedder,
	}
}

type dogRequest struct {
	Name             string  `json:"name" binding:"required"`
	Bio              string  `json:"bio"`
	Breed            string  `json:"breed"`
	Age              float64 `json:"age" binding:"min=0"`
	Weight           float64 `json:"weight" binding:"required,gt=0"`
	Sex              string  `json:"sex" binding:"required,oneof=female male"`
	Neutered         bool    `json:"neutered"`
	DogSociability   int     `json:"dog_sociability" binding:"required,min=1"`
	HumanSociability int     `json:"human_sociability" binding:"required,min=1"`
	Temperament      int     `json:"temperament" binding:"required,min=1"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// validateScale rechaza traits ordinales fuera de la escala con la que el
// embedder normaliza; un valor mayor rompería el rango [0,1] pre-pesado.
func (r dogRequest) validateScale(scale int) error {
	for _, v := range []int{r.DogSociability, r.HumanSociability, r.Temperament} {
		if v > scale {
			return fmt.Errorf("sociability and temperament must be between 1 and %d", scale)
		}
	}
	if r.Age > 20 {
		return fmt.Errorf("age must be at most 20")
	}
	if r.Weight > 200 {
		return fmt.Errorf("weight must be at most 200")
	}
	return nil
}

func (r dogRequest) toDog(id, ownerID string, createdAt, updatedAt time.Time) domain.Dog {
	return domain.Dog{
		ID:      id,
		OwnerID: ownerID,
		Name:    r.Name,
		Bio:     r.Bio,
		Traits: domain.TraitSet{
			Breed:            r.Breed,
			Age:              r.Age,
			Weight:           r.Weight,
			Sex:              r.Sex,
			Neutered:         r.Neutered,
			DogSociability:   r.DogSociability,
			HumanSociability: r.HumanSociability,
			Temperament:      r.Temperament,
		},
		Location: domain.Location{
			City:  r.City,
			State: r.State,
			Lat:   r.Lat,
			Lng:   r.Lng,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CreateDog maneja POST /dogs.
func (h *DogHandler) CreateDog(c *gin.Context) {
	claims, ok := GetOwnerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return
	}

	var req dogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create dog request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.validateScale(h.embedder.Scale()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	dog := req.toDog(uuid.NewString(), claims.OwnerID, now, now)

	if err := h.dogs.Create(c.Request.Context(), dog); err != nil {
		h.logger.Error("create dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create dog"})
		return
	}
	h.refreshEmbedding(c, dog)

	c.JSON(http.StatusCreated, gin.H{"dog": dog})
}

// GetDog maneja GET /dogs/:id.
func (h *DogHandler) GetDog(c *gin.Context) {
	dog, err := h.dogs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("get dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch dog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dog": dog})
}

// ListDogs maneja GET /dogs con filtros opcionales owner_id, breed y city.
func (h *DogHandler) ListDogs(c *gin.Context) {
	filter := repository.DogFilter{
		OwnerID: c.Query("owner_id"),
		Breed:   c.Query("breed"),
		City:    c.Query("city"),
	}

	dogs, err := h.dogs.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list dogs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list dogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dogs": dogs})
}

// UpdateDog maneja PUT /dogs/:id; solo el dueño puede mutar su perro.
func (h *DogHandler) UpdateDog(c *gin.Context) {
	claims, ok := GetOwnerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return
	}

	existing, err := h.dogs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("get dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch dog"})
		return
	}
	if existing.OwnerID != claims.OwnerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your dog"})
		return
	}

	var req dogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update dog request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.validateScale(h.embedder.Scale()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dog := req.toDog(existing.ID, existing.OwnerID, existing.CreatedAt, time.Now().UTC())
	if err := h.dogs.Update(c.Request.Context(), dog); err != nil {
		h.logger.Error("update dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update dog"})
		return
	}
	h.refreshEmbedding(c, dog)

	c.JSON(http.StatusOK, gin.H{"dog": dog})
}

// DeleteDog maneja DELETE /dogs/:id.
func (h *DogHandler) DeleteDog(c *gin.Context) {
	claims, ok := GetOwnerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return
	}

	existing, err := h.dogs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
			return
		}
		h.logger.Error("get dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch dog"})
		return
	}
	if existing.OwnerID != claims.OwnerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your dog"})
		return
	}

	if err := h.dogs.Delete(c.Request.Context(), existing.ID); err != nil {
		h.logger.Error("delete dog failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete dog"})
		return
	}

	c.Status(http.StatusNoContent)
}

// refreshEmbedding actualiza la columna pgvector usada por el browse de
// vecindad. Best-effort: el embedding canónico se recalcula al rankear.
func (h *DogHandler) refreshEmbedding(c *gin.Context, dog domain.Dog) {
	embedding := h.embedder.EmbedVector(dog.Traits)
	if err := h.dogs.UpdateEmbedding(c.Request.Context(), dog.ID, embedding); err != nil {
		h.logger.Warn("update embedding failed", zap.Error(err), zap.String("dog_id", dog.ID))
	}
}

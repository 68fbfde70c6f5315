package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paw-match/internal/domain"
	"paw-match/internal/email"
	"paw-match/internal/repository"
)

// ReviewService crea reseñas y notifica al dueño del perro reseñado.
type ReviewService struct {
	logger  *zap.Logger
	reviews repository.ReviewRepository
	dogs    repository.DogRepository
	owners  repository.OwnerRepository
	sender  email.Sender
}

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrOwnReview     = errors.New("cannot review your own dog")
)

func NewReviewService(
	logger *zap.Logger,
	reviews repository.ReviewRepository,
	dogs repository.DogRepository,
	owners repository.OwnerRepository,
	sender email.Sender,
) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		logger:  logger,
		reviews: reviews,
		dogs:    dogs,
		owners:  owners,
		sender:  sender,
	}
}

type CreateReviewInput struct {
	DogID   string
	OwnerID string
	Rating  int
	Comment string
}

// Create valida e inserta la reseña. La unicidad (owner, dog) la garantiza
// la base; aquí solo se traduce el conflicto a ErrDuplicateReview.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return domain.Review{}, ErrInvalidRating
	}

	dog, err := s.dogs.GetByID(ctx, input.DogID)
	if err != nil {
		return domain.Review{}, err
	}
	if dog.OwnerID == input.OwnerID {
		return domain.Review{}, ErrOwnReview
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		DogID:     input.DogID,
		OwnerID:   input.OwnerID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return domain.Review{}, err
	}

	s.notifyOwner(ctx, dog, review)
	return review, nil
}

// notifyOwner es best-effort: un correo fallido nunca afecta la reseña creada.
func (s *ReviewService) notifyOwner(ctx context.Context, dog domain.Dog, review domain.Review) {
	if s.sender == nil || s.owners == nil {
		return
	}
	dogOwner, err := s.owners.GetByID(ctx, dog.OwnerID)
	if err != nil {
		s.logger.Warn("review notification: owner lookup failed", zap.Error(err), zap.String("owner_id", dog.OwnerID))
		return
	}
	reviewer, err := s.owners.GetByID(ctx, review.OwnerID)
	reviewerName := ""
	if err == nil {
		reviewerName = reviewer.Name
	}
	if err := s.sender.SendReviewNotification(ctx, dogOwner.Email, dog.Name, reviewerName, review.Rating); err != nil {
		s.logger.Warn("review notification failed", zap.Error(err), zap.String("dog_id", dog.ID))
	}
}

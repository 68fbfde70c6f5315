package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"paw-match/internal/domain"
	"paw-match/internal/repository"
)

// OwnerService coordina registro y autenticación de dueños.
type OwnerService struct {
	logger  *zap.Logger
	owners  repository.OwnerRepository
	limiter LoginRateLimiter
}

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
	ErrWeakPassword       = errors.New("weak password")
)

func NewOwnerService(logger *zap.Logger, owners repository.OwnerRepository, limiter LoginRateLimiter) *OwnerService {
	if limiter == nil {
		limiter = NewLoginRateLimiter(10*time.Minute, 10)
	}
	return &OwnerService{
		logger:  logger,
		owners:  owners,
		limiter: limiter,
	}
}

type RegisterOwnerInput struct {
	Email    string
	Name     string
	Age      *int
	Gender   string
	About    string
	Password string
}

func (s *OwnerService) Register(ctx context.Context, input RegisterOwnerInput) (domain.Owner, error) {
	if s.owners == nil {
		return domain.Owner{}, errors.New("owner service not configured")
	}

	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Owner{}, ErrInvalidEmail
	}
	password := strings.TrimSpace(input.Password)
	if len(password) < 8 {
		return domain.Owner{}, ErrWeakPassword
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Owner{}, err
	}

	owner := domain.Owner{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Age:          input.Age,
		Gender:       strings.TrimSpace(input.Gender),
		About:        strings.TrimSpace(input.About),
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		return domain.Owner{}, err
	}
	return owner, nil
}

func (s *OwnerService) Authenticate(ctx context.Context, emailAddr, password string) (domain.Owner, error) {
	if s.owners == nil {
		return domain.Owner{}, errors.New("owner service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.Owner{}, ErrInvalidCredentials
	}
	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.Owner{}, ErrRateLimited
	}

	owner, err := s.owners.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Owner{}, ErrInvalidCredentials
		}
		return domain.Owner{}, err
	}
	if owner.PasswordHash == "" {
		return domain.Owner{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return domain.Owner{}, ErrInvalidCredentials
	}
	return owner, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

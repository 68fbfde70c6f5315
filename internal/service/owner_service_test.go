package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"paw-match/internal/domain"
)

type mockOwnerRepo struct {
	ownersByID    map[string]domain.Owner
	ownersByEmail map[string]string
	createErr     error
}

func newMockOwnerRepo() *mockOwnerRepo {
	return &mockOwnerRepo{
		ownersByID:    make(map[string]domain.Owner),
		ownersByEmail: make(map[string]string),
	}
}

func (m *mockOwnerRepo) Create(_ context.Context, owner domain.Owner) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.ownersByID[owner.ID] = owner
	if owner.Email != "" {
		m.ownersByEmail[owner.Email] = owner.ID
	}
	return nil
}

func (m *mockOwnerRepo) GetByID(_ context.Context, id string) (domain.Owner, error) {
	owner, ok := m.ownersByID[id]
	if !ok {
		return domain.Owner{}, pgx.ErrNoRows
	}
	return owner, nil
}

func (m *mockOwnerRepo) GetByEmail(_ context.Context, email string) (domain.Owner, error) {
	id, ok := m.ownersByEmail[email]
	if !ok {
		return domain.Owner{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func TestOwnerServiceRegister_NormalizesAndHashes(t *testing.T) {
	repo := newMockOwnerRepo()
	svc := NewOwnerService(zap.NewNop(), repo, allowAllLimiter{})

	owner, err := svc.Register(context.Background(), RegisterOwnerInput{
		Email:    "  Owner@Example.COM ",
		Name:     " Dana ",
		Password: "super-secret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if owner.Email != "owner@example.com" {
		t.Fatalf("expected normalized email, got %q", owner.Email)
	}
	if owner.Name != "Dana" {
		t.Fatalf("expected trimmed name, got %q", owner.Name)
	}
	if owner.PasswordHash == "" || owner.PasswordHash == "super-secret" {
		t.Fatalf("expected bcrypt hash, got %q", owner.PasswordHash)
	}
	if owner.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, ok := repo.ownersByEmail["owner@example.com"]; !ok {
		t.Fatalf("expected owner persisted")
	}
}

func TestOwnerServiceRegister_Validation(t *testing.T) {
	svc := NewOwnerService(zap.NewNop(), newMockOwnerRepo(), allowAllLimiter{})

	if _, err := svc.Register(context.Background(), RegisterOwnerInput{
		Email:    "not-an-email",
		Password: "super-secret",
	}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	if _, err := svc.Register(context.Background(), RegisterOwnerInput{
		Email:    "owner@example.com",
		Password: "short",
	}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestOwnerServiceAuthenticate_Success(t *testing.T) {
	repo := newMockOwnerRepo()
	svc := NewOwnerService(zap.NewNop(), repo, allowAllLimiter{})

	if _, err := svc.Register(context.Background(), RegisterOwnerInput{
		Email:    "owner@example.com",
		Password: "super-secret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	owner, err := svc.Authenticate(context.Background(), " Owner@example.com ", "super-secret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if owner.Email != "owner@example.com" {
		t.Fatalf("unexpected owner: %+v", owner)
	}
}

func TestOwnerServiceAuthenticate_Failures(t *testing.T) {
	repo := newMockOwnerRepo()
	svc := NewOwnerService(zap.NewNop(), repo, allowAllLimiter{})

	if _, err := svc.Register(context.Background(), RegisterOwnerInput{
		Email:    "owner@example.com",
		Password: "super-secret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "owner@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "super-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "", "super-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
}

func TestOwnerServiceAuthenticate_RateLimited(t *testing.T) {
	svc := NewOwnerService(zap.NewNop(), newMockOwnerRepo(), denyAllLimiter{})

	if _, err := svc.Authenticate(context.Background(), "owner@example.com", "super-secret"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paw-match/internal/domain"
)

// OwnerRepository define el contrato de persistencia para dueños.
type OwnerRepository interface {
	Create(ctx context.Context, owner domain.Owner) error
	GetByID(ctx context.Context, id string) (domain.Owner, error)
	GetByEmail(ctx context.Context, email string) (domain.Owner, error)
}

// PgOwnerRepository implementa OwnerRepository usando pgxpool.
type PgOwnerRepository struct {
	pool *pgxpool.Pool
}

func NewPgOwnerRepository(pool *pgxpool.Pool) *PgOwnerRepository {
	return &PgOwnerRepository{pool: pool}
}

func (r *PgOwnerRepository) Create(ctx context.Context, owner domain.Owner) error {
	const query = `
		INSERT INTO owners (id, email, name, age, gender, about, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	var age interface{}
	if owner.Age != nil {
		age = *owner.Age
	}
	_, err := r.pool.Exec(ctx, query,
		owner.ID,
		owner.Email,
		owner.Name,
		age,
		owner.Gender,
		owner.About,
		owner.PasswordHash,
		owner.CreatedAt,
	)
	return err
}

func (r *PgOwnerRepository) GetByID(ctx context.Context, id string) (domain.Owner, error) {
	const query = `
		SELECT id, email, name, age, gender, about, password_hash, created_at
		FROM owners
		WHERE id = $1
	`
	return r.scanOwner(r.pool.QueryRow(ctx, query, id))
}

func (r *PgOwnerRepository) GetByEmail(ctx context.Context, email string) (domain.Owner, error) {
	const query = `
		SELECT id, email, name, age, gender, about, password_hash, created_at
		FROM owners
		WHERE email = $1
	`
	return r.scanOwner(r.pool.QueryRow(ctx, query, email))
}

func (r *PgOwnerRepository) scanOwner(row pgx.Row) (domain.Owner, error) {
	var o domain.Owner
	var age sql.NullInt64
	err := row.Scan(
		&o.ID,
		&o.Email,
		&o.Name,
		&age,
		&o.Gender,
		&o.About,
		&o.PasswordHash,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Owner{}, err
	}
	if age.Valid {
		val := int(age.Int64)
		o.Age = &val
	}
	return o, err
}

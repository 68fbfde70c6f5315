package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paw-match/internal/domain"
)

// BreedRepository expone el catálogo de razas.
type BreedRepository interface {
	List(ctx context.Context) ([]domain.Breed, error)
	Search(ctx context.Context, name string) ([]domain.Breed, error)
}

// PgBreedRepository implementa BreedRepository usando pgxpool.
type PgBreedRepository struct {
	pool *pgxpool.Pool
}

func NewPgBreedRepository(pool *pgxpool.Pool) *PgBreedRepository {
	return &PgBreedRepository{pool: pool}
}

func (r *PgBreedRepository) List(ctx context.Context) ([]domain.Breed, error) {
	const query = `SELECT id, name, size_class FROM breeds ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreeds(rows)
}

func (r *PgBreedRepository) Search(ctx context.Context, name string) ([]domain.Breed, error) {
	const query = `SELECT id, name, size_class FROM breeds WHERE name ILIKE $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreeds(rows)
}

func scanBreeds(rows pgx.Rows) ([]domain.Breed, error) {
	var breeds []domain.Breed
	for rows.Next() {
		var b domain.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.SizeClass); err != nil {
			return nil, err
		}
		breeds = append(breeds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return breeds, nil
}

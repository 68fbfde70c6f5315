package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"paw-match/internal/domain"
)

// ErrDuplicateReview se devuelve cuando un dueño ya reseñó a ese perro.
var ErrDuplicateReview = errors.New("duplicate review")

// ReviewRepository define el contrato de persistencia para reseñas.
type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) error
	ListByDog(ctx context.Context, dogID string) ([]domain.Review, error)
	Comments(ctx context.Context, dogID string) ([]string, error)
	CountByDog(ctx context.Context, dogID string) (int, error)
}

// PgReviewRepository implementa ReviewRepository usando pgxpool.
type PgReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

func (r *PgReviewRepository) Create(ctx context.Context, review domain.Review) error {
	const query = `
		INSERT INTO reviews (id, dog_id, owner_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.DogID,
		review.OwnerID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateReview
	}
	return err
}

func (r *PgReviewRepository) ListByDog(ctx context.Context, dogID string) ([]domain.Review, error) {
	const query = `
		SELECT id, dog_id, owner_id, rating, comment, created_at
		FROM reviews
		WHERE dog_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, dogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(
			&rev.ID,
			&rev.DogID,
			&rev.OwnerID,
			&rev.Rating,
			&rev.Comment,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Comments devuelve solo los textos no vacíos, que es lo que consume
// el estimador de sentimiento.
func (r *PgReviewRepository) Comments(ctx context.Context, dogID string) ([]string, error) {
	const query = `
		SELECT comment
		FROM reviews
		WHERE dog_id = $1 AND comment <> ''
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, dogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []string
	for rows.Next() {
		var comment string
		if err := rows.Scan(&comment); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *PgReviewRepository) CountByDog(ctx context.Context, dogID string) (int, error) {
	const query = `SELECT COUNT(*) FROM reviews WHERE dog_id = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, dogID).Scan(&count)
	return count, err
}

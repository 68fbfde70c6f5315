package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"paw-match/internal/domain"
)

// DogFilter acota listados genéricos de perros.
type DogFilter struct {
	OwnerID string
	Breed   string
	City    string
}

// DogRepository define el contrato de persistencia para perros.
type DogRepository interface {
	Create(ctx context.Context, dog domain.Dog) error
	GetByID(ctx context.Context, id string) (domain.Dog, error)
	List(ctx context.Context, filter DogFilter) ([]domain.Dog, error)
	ListByState(ctx context.Context, state string) ([]domain.Dog, error)
	Update(ctx context.Context, dog domain.Dog) error
	Delete(ctx context.Context, id string) error
	UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error
	SearchNearest(ctx context.Context, embedding pgvector.Vector, excludeID string, k int) ([]domain.Dog, error)
}

// PgDogRepository implementa DogRepository usando pgxpool.
type PgDogRepository struct {
	pool *pgxpool.Pool
}

func NewPgDogRepository(pool *pgxpool.Pool) *PgDogRepository {
	return &PgDogRepository{pool: pool}
}

const dogColumns = `
	id, owner_id, name, bio, breed, age, weight, sex, neutered,
	dog_sociability, human_sociability, temperament,
	city, state, lat, lng, created_at, updated_at
`

func (r *PgDogRepository) Create(ctx context.Context, dog domain.Dog) error {
	const query = `
		INSERT INTO dogs (
			id, owner_id, name, bio, breed, age, weight, sex, neutered,
			dog_sociability, human_sociability, temperament,
			city, state, lat, lng, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.pool.Exec(ctx, query,
		dog.ID,
		dog.OwnerID,
		dog.Name,
		dog.Bio,
		dog.Traits.Breed,
		dog.Traits.Age,
		dog.Traits.Weight,
		dog.Traits.Sex,
		dog.Traits.Neutered,
		dog.Traits.DogSociability,
		dog.Traits.HumanSociability,
		dog.Traits.Temperament,
		dog.Location.City,
		dog.Location.State,
		dog.Location.Lat,
		dog.Location.Lng,
		dog.CreatedAt,
		dog.UpdatedAt,
	)
	return err
}

func (r *PgDogRepository) GetByID(ctx context.Context, id string) (domain.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	dog, err := scanDog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Dog{}, err
	}
	return dog, err
}

func (r *PgDogRepository) List(ctx context.Context, filter DogFilter) ([]domain.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE 1=1`
	args := []interface{}{}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		query += ` AND owner_id = $1`
	}
	if filter.Breed != "" {
		args = append(args, "%"+filter.Breed+"%")
		query += ` AND breed ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += ` AND city ILIKE $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDogs(rows)
}

func (r *PgDogRepository) ListByState(ctx context.Context, state string) ([]domain.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE state = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDogs(rows)
}

func (r *PgDogRepository) Update(ctx context.Context, dog domain.Dog) error {
	const query = `
		UPDATE dogs SET
			name = $2, bio = $3, breed = $4, age = $5, weight = $6, sex = $7,
			neutered = $8, dog_sociability = $9, human_sociability = $10,
			temperament = $11, city = $12, state = $13, lat = $14, lng = $15,
			updated_at = $16
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		dog.ID,
		dog.Name,
		dog.Bio,
		dog.Traits.Breed,
		dog.Traits.Age,
		dog.Traits.Weight,
		dog.Traits.Sex,
		dog.Traits.Neutered,
		dog.Traits.DogSociability,
		dog.Traits.HumanSociability,
		dog.Traits.Temperament,
		dog.Location.City,
		dog.Location.State,
		dog.Location.Lat,
		dog.Location.Lng,
		dog.UpdatedAt,
	)
	return err
}

func (r *PgDogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM dogs WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// UpdateEmbedding refresca la columna vector(6) usada por SearchNearest.
// El embedding canónico siempre se recalcula desde los traits al rankear;
// la columna existe solo para el browse aproximado por vecindad.
func (r *PgDogRepository) UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error {
	const query = `UPDATE dogs SET embedding = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, embedding)
	return err
}

func (r *PgDogRepository) SearchNearest(ctx context.Context, embedding pgvector.Vector, excludeID string, k int) ([]domain.Dog, error) {
	if k <= 0 {
		k = 10
	}
	query := `SELECT ` + dogColumns + `
		FROM dogs
		WHERE id <> $1 AND embedding IS NOT NULL
		ORDER BY embedding <=> $2
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, excludeID, embedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDogs(rows)
}

func scanDog(row pgx.Row) (domain.Dog, error) {
	var d domain.Dog
	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Name,
		&d.Bio,
		&d.Traits.Breed,
		&d.Traits.Age,
		&d.Traits.Weight,
		&d.Traits.Sex,
		&d.Traits.Neutered,
		&d.Traits.DogSociability,
		&d.Traits.HumanSociability,
		&d.Traits.Temperament,
		&d.Location.City,
		&d.Location.State,
		&d.Location.Lat,
		&d.Location.Lng,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func scanDogs(rows pgx.Rows) ([]domain.Dog, error) {
	var dogs []domain.Dog
	for rows.Next() {
		dog, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, dog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dogs, nil
}

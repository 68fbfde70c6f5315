package domain

import "time"

// Review es la reseña que un dueño deja sobre un perro ajeno.
// El par (owner_id, dog_id) es único a nivel de base de datos.
type Review struct {
	ID        string    `json:"id"`
	DogID     string    `json:"dog_id"`
	OwnerID   string    `json:"owner_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

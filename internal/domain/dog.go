package domain

import "time"

const (
	SexFemale = "female"
	SexMale   = "male"
)

// TraitSet agrupa los atributos comparables de un perro.
// dogSociability, humanSociability y temperament usan escala ordinal 1-5
// (la escala histórica 1-10 sigue soportada via SOCIABILITY_SCALE).
type TraitSet struct {
	Breed            string  `json:"breed"`
	Age              float64 `json:"age"`
	Weight           float64 `json:"weight"`
	Sex              string  `json:"sex"`
	Neutered         bool    `json:"neutered"`
	DogSociability   int     `json:"dog_sociability"`
	HumanSociability int     `json:"human_sociability"`
	Temperament      int     `json:"temperament"`
}

type Location struct {
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type Dog struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	Traits    TraitSet  `json:"traits"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SameState indica si dos perros comparten región gruesa (estado).
func (d Dog) SameState(other Dog) bool {
	return d.Location.State != "" && d.Location.State == other.Location.State
}

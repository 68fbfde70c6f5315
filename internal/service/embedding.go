package service

import (
	"math"

	pgvector "github.com/pgvector/pgvector-go"

	"paw-match/internal/domain"
)

// EmbeddingDim es la dimensión fija del embedding de traits:
// age, weight, sex, neutered, dogSociability, temperament.
// humanSociability y breed quedan fuera del embedding numérico.
const EmbeddingDim = 6

// Rangos de normalización y pesos por atributo. Los pesos codifican la
// importancia relativa de cada trait y deben mantenerse exactos.
var (
	ageRange    = [2]float64{0, 20}
	weightRange = [2]float64{1, 200}

	traitWeights = [EmbeddingDim]float64{1.0, 0.8, 0.6, 0.7, 1.2, 1.1}
)

// TraitEmbedder convierte un TraitSet en un vector L2-normalizado.
// La transformación es pura y determinista: valores fuera de los rangos
// declarados son responsabilidad del caller, no se clampean aquí.
type TraitEmbedder struct {
	sociabilityScale float64
}

// NewTraitEmbedder recibe la escala ordinal de sociabilidad/temperament
// (5 por defecto; 10 es la variante histórica re-escalada).
func NewTraitEmbedder(sociabilityScale int) TraitEmbedder {
	if sociabilityScale < 2 {
		sociabilityScale = 5
	}
	return TraitEmbedder{sociabilityScale: float64(sociabilityScale)}
}

// Scale expone el tope de la escala ordinal configurada, para que las
// capas de entrada validen contra la misma escala con la que se normaliza.
func (e TraitEmbedder) Scale() int {
	return int(e.sociabilityScale)
}

// Embed normaliza cada atributo a [0,1], lo pondera y L2-normaliza el
// vector resultante. Un vector todo-cero se devuelve sin normalizar.
func (e TraitEmbedder) Embed(traits domain.TraitSet) []float64 {
	sex := 0.0
	if traits.Sex == domain.SexMale {
		sex = 1.0
	}
	neutered := 0.0
	if traits.Neutered {
		neutered = 1.0
	}

	normalized := [EmbeddingDim]float64{
		(traits.Age - ageRange[0]) / (ageRange[1] - ageRange[0]),
		(traits.Weight - weightRange[0]) / (weightRange[1] - weightRange[0]),
		sex,
		neutered,
		(float64(traits.DogSociability) - 1) / (e.sociabilityScale - 1),
		(float64(traits.Temperament) - 1) / (e.sociabilityScale - 1),
	}

	vec := make([]float64, EmbeddingDim)
	var sumSquares float64
	for i, v := range normalized {
		weighted := v * traitWeights[i]
		vec[i] = weighted
		sumSquares += weighted * weighted
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// EmbedVector devuelve el embedding en el tipo que persiste pgvector.
func (e TraitEmbedder) EmbedVector(traits domain.TraitSet) pgvector.Vector {
	vec := e.Embed(traits)
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(v)
	}
	return pgvector.NewVector(out)
}

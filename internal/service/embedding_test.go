package service

import (
	"math"
	"testing"

	"paw-match/internal/domain"
)

func sampleTraits() domain.TraitSet {
	return domain.TraitSet{
		Breed:            "border collie",
		Age:              4,
		Weight:           18,
		Sex:              domain.SexFemale,
		Neutered:         true,
		DogSociability:   4,
		HumanSociability: 5,
		Temperament:      3,
	}
}

func TestTraitEmbedderEmbed_Dimension(t *testing.T) {
	embedder := NewTraitEmbedder(5)
	vec := embedder.Embed(sampleTraits())
	if len(vec) != EmbeddingDim {
		t.Fatalf("expected dimension %d, got %d", EmbeddingDim, len(vec))
	}
}

func TestTraitEmbedderEmbed_UnitNorm(t *testing.T) {
	embedder := NewTraitEmbedder(5)
	vec := embedder.Embed(sampleTraits())

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
		t.Fatalf("expected unit norm, got %v", math.Sqrt(sum))
	}
}

func TestTraitEmbedderEmbed_ZeroVectorPassthrough(t *testing.T) {
	embedder := NewTraitEmbedder(5)
	// Todos los atributos en el mínimo de su rango producen el vector cero,
	// que se devuelve sin normalizar.
	vec := embedder.Embed(domain.TraitSet{
		Age:            0,
		Weight:         1,
		Sex:            domain.SexFemale,
		Neutered:       false,
		DogSociability: 1,
		Temperament:    1,
	})
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("expected zero vector, got %v at index %d", v, i)
		}
	}
}

func TestTraitEmbedderEmbed_SingleComponent(t *testing.T) {
	embedder := NewTraitEmbedder(5)
	// Solo el sexo aporta; tras normalizar, esa componente queda en 1.
	vec := embedder.Embed(domain.TraitSet{
		Age:            0,
		Weight:         1,
		Sex:            domain.SexMale,
		DogSociability: 1,
		Temperament:    1,
	})
	want := []float64{0, 0, 1, 0, 0, 0}
	for i := range want {
		if math.Abs(vec[i]-want[i]) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, vec)
		}
	}
}

func TestTraitEmbedderEmbed_ScaleChangesSociability(t *testing.T) {
	traits := sampleTraits()
	traits.DogSociability = 3
	traits.Temperament = 3

	five := NewTraitEmbedder(5).Embed(traits)
	ten := NewTraitEmbedder(10).Embed(traits)

	same := true
	for i := range five {
		if math.Abs(five[i]-ten[i]) > 1e-9 {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different embeddings across sociability scales")
	}
}

func TestNewTraitEmbedder_InvalidScaleFallsBackToDefault(t *testing.T) {
	traits := sampleTraits()
	bad := NewTraitEmbedder(0).Embed(traits)
	def := NewTraitEmbedder(5).Embed(traits)
	for i := range def {
		if bad[i] != def[i] {
			t.Fatalf("expected scale fallback to 5, got %v vs %v", bad, def)
		}
	}
}

func TestTraitEmbedderEmbedVector_MatchesEmbed(t *testing.T) {
	embedder := NewTraitEmbedder(5)
	traits := sampleTraits()

	vec := embedder.Embed(traits)
	pgvec := embedder.EmbedVector(traits).Slice()

	if len(pgvec) != len(vec) {
		t.Fatalf("expected %d components, got %d", len(vec), len(pgvec))
	}
	for i := range vec {
		if math.Abs(float64(pgvec[i])-vec[i]) > 1e-6 {
			t.Fatalf("component %d mismatch: %v vs %v", i, pgvec[i], vec[i])
		}
	}
}

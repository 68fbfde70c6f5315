package domain

// CompatibilityResult es el resultado efímero de evaluar un candidato
// contra el perro de referencia. No se persiste.
type CompatibilityResult struct {
	DogID              string  `json:"dog_id"`
	CompatibilityScore float64 `json:"compatibility_score"`
	CosineSimilarity   float64 `json:"cosine_similarity"`
	SentimentScore     float64 `json:"sentiment_score"`
	IsCompatible       bool    `json:"is_compatible"`
}

// SimilarDog es una entrada del browse por vecindad: el perro más la
// similitud coseno contra la referencia, sin enriquecimiento de sentimiento.
type SimilarDog struct {
	Dog        Dog     `json:"dog"`
	Similarity float64 `json:"similarity"`
}

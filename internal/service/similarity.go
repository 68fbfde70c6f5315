package service

import "math"

// Cosine calcula la similitud coseno entre dos vectores.
// Vectores de dimensión distinta o de magnitud cero se tratan como
// incomparables y devuelven 0: el pipeline de ranking debe continuar
// con el resto de candidatos, nunca abortar por un par defectuoso.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Clamp para absorber deriva de punto flotante.
	if sim > 1 {
		return 1
	}
	if sim < -1 {
		return -1
	}
	return sim
}

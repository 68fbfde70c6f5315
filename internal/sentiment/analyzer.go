package sentiment

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Analyzer estima la polaridad promedio de un conjunto de comentarios.
// El resultado siempre cae en [-1, 1]; una lista vacía vale 0.
// Las implementaciones nunca devuelven error: un fallo de enriquecimiento
// degrada la calidad del score, no el ranking.
type Analyzer interface {
	Average(ctx context.Context, comments []string) float64
}

var positiveWords = []string{
	"amazing", "wonderful", "great", "excellent", "perfect", "friendly",
	"loving", "gentle", "smart", "playful", "energetic", "good", "nice",
	"recommend",
}

var negativeWords = []string{
	"terrible", "bad", "aggressive", "mean", "shy", "destructive", "loud",
	"untrained",
}

// LexicalAnalyzer puntúa comentarios con listas fijas de palabras.
// Siempre disponible y síncrono; es además el fallback del estimador externo.
type LexicalAnalyzer struct{}

func NewLexicalAnalyzer() LexicalAnalyzer {
	return LexicalAnalyzer{}
}

func (LexicalAnalyzer) Average(_ context.Context, comments []string) float64 {
	if len(comments) == 0 {
		return 0
	}
	total := 0.0
	for _, comment := range comments {
		total += scoreComment(comment)
	}
	return total / float64(len(comments))
}

func scoreComment(text string) float64 {
	score := 0.0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		for _, pos := range positiveWords {
			if strings.Contains(token, pos) {
				score += 0.1
				break
			}
		}
		for _, neg := range negativeWords {
			if strings.Contains(token, neg) {
				score -= 0.1
				break
			}
		}
	}

	exclamations := float64(strings.Count(text, "!"))
	bonus := exclamations * 0.1
	if bonus > 0.3 {
		bonus = 0.3
	}
	score += bonus

	if length := utf8.RuneCountInString(text); length > 0 {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		score += (float64(upper) / float64(length)) * 0.2
	}

	return clamp(score)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

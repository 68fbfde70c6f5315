package sentiment

import (
	"context"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLexicalAnalyzerAverage_EmptyList(t *testing.T) {
	analyzer := NewLexicalAnalyzer()
	if got := analyzer.Average(context.Background(), nil); got != 0 {
		t.Fatalf("expected 0 for empty list, got %v", got)
	}
	if got := analyzer.Average(context.Background(), []string{}); got != 0 {
		t.Fatalf("expected 0 for empty slice, got %v", got)
	}
}

func TestLexicalAnalyzerAverage_Polarity(t *testing.T) {
	analyzer := NewLexicalAnalyzer()
	ctx := context.Background()

	positive := analyzer.Average(ctx, []string{"such a friendly and playful dog"})
	if positive <= 0 {
		t.Fatalf("expected positive score, got %v", positive)
	}

	negative := analyzer.Average(ctx, []string{"aggressive and destructive, stay away"})
	if negative >= 0 {
		t.Fatalf("expected negative score, got %v", negative)
	}
}

func TestLexicalAnalyzerAverage_AveragesAcrossComments(t *testing.T) {
	analyzer := NewLexicalAnalyzer()

	// "great dog" vale +0.1 y "bad dog" -0.1; el promedio se anula.
	got := analyzer.Average(context.Background(), []string{"great dog", "bad dog"})
	if !almostEqual(got, 0) {
		t.Fatalf("expected average 0, got %v", got)
	}
}

func TestScoreComment_WordMatchInsideToken(t *testing.T) {
	// El match es por contención en el token, así que la puntuación
	// pegada a la palabra sigue contando.
	if got := scoreComment("great, really great."); !almostEqual(got, 0.2) {
		t.Fatalf("expected 0.2, got %v", got)
	}
}

func TestScoreComment_ExclamationBonusCapped(t *testing.T) {
	base := scoreComment("ok")
	three := scoreComment("ok!!!")
	six := scoreComment("ok!!!!!!")

	if !almostEqual(three-base, 0.3) {
		t.Fatalf("expected +0.3 for three exclamations, got %v", three-base)
	}
	if !almostEqual(six, three) {
		t.Fatalf("expected bonus capped at 0.3: three=%v six=%v", three, six)
	}
}

func TestScoreComment_CapsEmphasis(t *testing.T) {
	lower := scoreComment("great")
	upper := scoreComment("GREAT")

	// Todo mayúsculas añade el énfasis completo de 0.2.
	if !almostEqual(upper-lower, 0.2) {
		t.Fatalf("expected +0.2 caps emphasis, got %v", upper-lower)
	}
}

func TestScoreComment_ClampedToUnitRange(t *testing.T) {
	overloaded := "amazing wonderful great excellent perfect friendly loving gentle smart playful energetic good nice recommend"
	if got := scoreComment(overloaded); got != 1 {
		t.Fatalf("expected clamp at 1, got %v", got)
	}

	hostile := "terrible bad aggressive mean shy destructive loud untrained terrible bad aggressive"
	if got := scoreComment(hostile); got < -1 {
		t.Fatalf("expected clamp at -1, got %v", got)
	}
}

package sentiment

import "context"

// MockAnalyzer permite tests sin cálculo real.
type MockAnalyzer struct {
	Score float64
	Calls int
}

func (m *MockAnalyzer) Average(_ context.Context, comments []string) float64 {
	m.Calls++
	if len(comments) == 0 {
		return 0
	}
	return m.Score
}

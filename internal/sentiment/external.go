package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPAnalyzer delega el análisis a un servicio externo de sentimiento.
// Cualquier fallo (red, status no-2xx, body malformado, valor fuera de rango)
// cae silenciosamente al analyzer de fallback; el caller nunca ve el error.
type HTTPAnalyzer struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	fallback Analyzer
	logger   *zap.Logger
}

func NewHTTPAnalyzer(baseURL, apiKey string, timeout time.Duration, fallback Analyzer, logger *zap.Logger) *HTTPAnalyzer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if fallback == nil {
		fallback = NewLexicalAnalyzer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPAnalyzer{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		fallback: fallback,
		logger:   logger,
	}
}

type analyzeRequest struct {
	Comments []string `json:"comments"`
}

type analyzeResponse struct {
	AverageSentiment *float64 `json:"averageSentiment"`
}

func (a *HTTPAnalyzer) Average(ctx context.Context, comments []string) float64 {
	if len(comments) == 0 {
		return 0
	}

	score, err := a.call(ctx, comments)
	if err != nil {
		a.logger.Warn("external sentiment failed, using lexical fallback", zap.Error(err))
		return a.fallback.Average(ctx, comments)
	}
	return score
}

func (a *HTTPAnalyzer) call(ctx context.Context, comments []string) (float64, error) {
	bodyBytes, err := json.Marshal(analyzeRequest{Comments: comments})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/sentiment", bytes.NewReader(bodyBytes))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("sentiment http error: status=%d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.AverageSentiment == nil {
		return 0, fmt.Errorf("sentiment response missing averageSentiment")
	}
	score := *parsed.AverageSentiment
	if score < -1 || score > 1 {
		return 0, fmt.Errorf("sentiment out of range: %v", score)
	}
	return score, nil
}

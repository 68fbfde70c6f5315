package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"paw-match/internal/domain"
	"paw-match/internal/repository"
	"paw-match/internal/sentiment"
)

// maxSentimentFanout acota las búsquedas de reviews concurrentes por request.
const maxSentimentFanout = 8

// MatchService produce el feed personalizado y los rankings de
// compatibilidad. Solo hace lecturas: nunca muta estado persistido.
type MatchService struct {
	logger   *zap.Logger
	dogs     repository.DogRepository
	reviews  repository.ReviewRepository
	analyzer sentiment.Analyzer
	embedder TraitEmbedder
	engine   ScoreEngine
	cache    SentimentCache
}

func NewMatchService(
	logger *zap.Logger,
	dogs repository.DogRepository,
	reviews repository.ReviewRepository,
	analyzer sentiment.Analyzer,
	embedder TraitEmbedder,
	engine ScoreEngine,
	cache SentimentCache,
) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewNoopSentimentCache()
	}
	return &MatchService{
		logger:   logger,
		dogs:     dogs,
		reviews:  reviews,
		analyzer: analyzer,
		embedder: embedder,
		engine:   engine,
		cache:    cache,
	}
}

// SimilarityOnly devuelve solo la similitud coseno entre dos perros.
// Es la aproximación barata para displays que no necesitan sentimiento.
func (s *MatchService) SimilarityOnly(reference, candidate domain.Dog) float64 {
	return Cosine(s.embedder.Embed(reference.Traits), s.embedder.Embed(candidate.Traits))
}

// Rank evalúa todos los candidatos contra la referencia y los ordena por
// score compuesto descendente (orden estable: empates conservan el orden
// de entrada). Un candidato cuyas reviews no se pueden leer se descarta
// con un warn; el resto del batch sigue. Siempre devuelve una lista.
func (s *MatchService) Rank(ctx context.Context, reference domain.Dog, candidates []domain.Dog) []domain.CompatibilityResult {
	refEmbedding := s.embedder.Embed(reference.Traits)
	refSentiment, err := s.dogSentiment(ctx, reference.ID)
	if err != nil {
		// Sentimiento de la referencia degradado a neutro; el ranking continúa.
		s.logger.Warn("reference sentiment unavailable", zap.Error(err), zap.String("dog_id", reference.ID))
		refSentiment = 0
	}

	results := make([]*domain.CompatibilityResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxSentimentFanout)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			candSentiment, err := s.dogSentiment(gctx, candidate.ID)
			if err != nil {
				s.logger.Warn("candidate skipped", zap.Error(err), zap.String("dog_id", candidate.ID))
				return nil
			}
			cosineSim := Cosine(refEmbedding, s.embedder.Embed(candidate.Traits))
			score := s.engine.Composite(cosineSim, refSentiment, candSentiment)
			results[i] = &domain.CompatibilityResult{
				DogID:              candidate.ID,
				CompatibilityScore: score,
				CosineSimilarity:   cosineSim,
				SentimentScore:     candSentiment,
				IsCompatible:       s.engine.Compatible(score),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("ranking interrupted", zap.Error(err), zap.String("dog_id", reference.ID))
	}

	ranked := make([]domain.CompatibilityResult, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})
	return ranked
}

// ForYouFeed arma el feed curado: candidatos del mismo estado que la
// referencia (puerta de región), excluyendo perros del mismo dueño, y
// filtrados por el threshold de compatibilidad.
func (s *MatchService) ForYouFeed(ctx context.Context, dogID string, limit int) ([]domain.CompatibilityResult, error) {
	reference, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return nil, fmt.Errorf("get reference dog %s: %w", dogID, err)
	}

	candidates, err := s.dogs.ListByState(ctx, reference.Location.State)
	if err != nil {
		return nil, fmt.Errorf("list dogs by state %s: %w", reference.Location.State, err)
	}
	candidates = gateCandidates(candidates, reference)

	ranked := s.Rank(ctx, reference, candidates)

	feed := make([]domain.CompatibilityResult, 0, len(ranked))
	for _, r := range ranked {
		if !r.IsCompatible {
			continue
		}
		feed = append(feed, r)
		if limit > 0 && len(feed) >= limit {
			break
		}
	}
	return feed, nil
}

// TopMatches es el ranking genérico sin puerta de región ni filtro por
// threshold; el caller decide cuántos resultados conservar.
func (s *MatchService) TopMatches(ctx context.Context, dogID string, limit int) ([]domain.CompatibilityResult, error) {
	reference, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return nil, fmt.Errorf("get reference dog %s: %w", dogID, err)
	}

	candidates, err := s.dogs.List(ctx, repository.DogFilter{})
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	filtered := candidates[:0]
	for _, c := range candidates {
		if c.ID != reference.ID {
			filtered = append(filtered, c)
		}
	}

	ranked := s.Rank(ctx, reference, filtered)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// SimilarDogs usa el índice pgvector para un browse aproximado por
// vecindad de traits, sin enriquecimiento de sentimiento. Cada vecino
// lleva la similitud exacta (SimilarityOnly) para el display.
func (s *MatchService) SimilarDogs(ctx context.Context, dogID string, k int) ([]domain.SimilarDog, error) {
	reference, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return nil, fmt.Errorf("get reference dog %s: %w", dogID, err)
	}
	neighbors, err := s.dogs.SearchNearest(ctx, s.embedder.EmbedVector(reference.Traits), reference.ID, k)
	if err != nil {
		return nil, fmt.Errorf("search nearest for %s: %w", dogID, err)
	}

	results := make([]domain.SimilarDog, 0, len(neighbors))
	for _, neighbor := range neighbors {
		results = append(results, domain.SimilarDog{
			Dog:        neighbor,
			Similarity: s.SimilarityOnly(reference, neighbor),
		})
	}
	return results, nil
}

func (s *MatchService) dogSentiment(ctx context.Context, dogID string) (float64, error) {
	if score, ok := s.cache.Get(ctx, dogID); ok {
		return score, nil
	}
	comments, err := s.reviews.Comments(ctx, dogID)
	if err != nil {
		return 0, fmt.Errorf("fetch comments for %s: %w", dogID, err)
	}
	score := s.analyzer.Average(ctx, comments)
	s.cache.Set(ctx, dogID, score)
	return score, nil
}

// gateCandidates aplica la puerta de región (SameState es la regla
// autoritativa, aunque el listado ya venga acotado por SQL) y excluye
/// los perros del mismo dueño. Una referencia sin estado no tiene región:
// su feed curado queda vacío.
func gateCandidates(candidates []domain.Dog, reference domain.Dog) []domain.Dog {
	kept := candidates[:0]
	for _, c := range candidates {
		if !reference.SameState(c) {
			continue
		}
		if c.ID == reference.ID || c.OwnerID == reference.OwnerID {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

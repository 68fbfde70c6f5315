package service

// Valores por defecto de los tunables del score. El threshold histórico
// alterno es 0.75; ambos se exponen vía configuración, nunca inline en
// los call sites.
const (
	DefaultCompatThreshold = 0.85
	DefaultSmoothing       = 1.0
)

// ScoreEngine combina similitud coseno y el sentimiento de ambas partes
// en un score compuesto de compatibilidad.
type ScoreEngine struct {
	Threshold float64
	K         float64
}

func NewScoreEngine(threshold, k float64) ScoreEngine {
	if threshold <= 0 {
		threshold = DefaultCompatThreshold
	}
	if k <= 0 {
		k = DefaultSmoothing
	}
	return ScoreEngine{Threshold: threshold, K: k}
}

// Composite aplica la fórmula exacta del sistema:
//
//	score = cos × ((sSelf + 0.5k) / (sSelf + k)) × ((sOther + 3k) / (sOther + 5k))
//
// El primer término amortigua el score cuando el sentimiento recibido por
// el perfil de referencia es pobre; el segundo castiga más agresivamente
// el mal sentimiento del candidato. Con sentimiento neutro (0) y k=1 los
// multiplicadores quedan en 0.5 y 0.6. k es la constante de suavizado:
// sentimiento acotado a [-1,1] y k=1 mantienen ambos denominadores
// estrictamente positivos.
func (s ScoreEngine) Composite(cosineSim, sentimentSelf, sentimentOther float64) float64 {
	k := s.K
	if k <= 0 {
		k = DefaultSmoothing
	}
	return cosineSim *
		((sentimentSelf + 0.5*k) / (sentimentSelf + k)) *
		((sentimentOther + 3*k) / (sentimentOther + 5*k))
}

// Compatible deriva el veredicto booleano contra el threshold configurado.
func (s ScoreEngine) Compatible(score float64) bool {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultCompatThreshold
	}
	return score >= threshold
}

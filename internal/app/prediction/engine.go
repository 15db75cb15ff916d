package prediction

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Engine runs the symptom-to-disease pipeline: normalize each symptom name,
// collect candidates from the configured source, merge, rank and derive the
// overall risk level. The engine holds no mutable state; a single instance
// is safe for arbitrarily many concurrent callers.
type Engine struct {
	source CandidateSource
}

// NewEngine wires the engine to a candidate source. The caller chooses the
// variant (rules or trained model) once at startup; the engine never probes
// for availability itself.
func NewEngine(source CandidateSource) *Engine {
	return &Engine{source: source}
}

// SourceName reports which candidate source variant is active.
func (e *Engine) SourceName() string { return e.source.Name() }

// Predict scores the request's symptoms and returns the ranked candidate
// list. A source failure for one symptom skips that symptom only; Predict
// never returns an error. An empty or fully unmapped symptom list yields an
// empty candidate list with confidence 0.0 and risk "low".
func (e *Engine) Predict(req PredictRequest) PredictResult {
	var flat []DiseaseCandidate
	for _, s := range req.Symptoms {
		key := Normalize(s.Name)
		if key == "" {
			continue
		}
		cands, err := e.source.Candidates([]Symptom{{
			Name:     key,
			Severity: s.Severity,
			Duration: s.Duration,
		}})
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"symptom": key,
				"source":  e.source.Name(),
			}).Warn("candidate source failed, skipping symptom")
			continue
		}
		flat = append(flat, cands...)
	}

	ranked := rank(flat)
	overall := 0.0
	if len(ranked) > 0 {
		overall = ranked[0].ConfidenceScore
	}
	return PredictResult{
		PredictedDiseases: ranked,
		OverallConfidence: overall,
		RiskLevel:         RiskLevel(overall),
	}
}

// rank deduplicates by disease name keeping the max score per disease
// (first-seen wins ties), sorts by score descending and truncates to
// MaxCandidates.
func rank(candidates []DiseaseCandidate) []DiseaseCandidate {
	order := make([]string, 0, len(candidates))
	best := make(map[string]DiseaseCandidate, len(candidates))
	for _, c := range candidates {
		prev, seen := best[c.DiseaseName]
		if !seen {
			order = append(order, c.DiseaseName)
			best[c.DiseaseName] = c
			continue
		}
		if c.ConfidenceScore > prev.ConfidenceScore {
			best[c.DiseaseName] = c
		}
	}

	merged := make([]DiseaseCandidate, 0, len(order))
	for _, name := range order {
		merged = append(merged, best[name])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ConfidenceScore > merged[j].ConfidenceScore
	})
	if len(merged) > MaxCandidates {
		merged = merged[:MaxCandidates]
	}
	return merged
}

// RiskLevel buckets an overall confidence score. Boundaries are
// strictly-greater-than: exactly 0.7 is "medium", exactly 0.4 is "low".
func RiskLevel(confidence float64) string {
	switch {
	case confidence > 0.7:
		return RiskHigh
	case confidence > 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

package prediction

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"time"
)

// Artifact is the trained model written by cmd/train and loaded at startup.
// It holds naive-bayes log-likelihood tables over three categorical
// features: symptom presence, reported severity and reported duration.
type Artifact struct {
	Version        int         `json:"version"`
	TrainedAt      time.Time   `json:"trained_at"`
	Seed           int64       `json:"seed"`
	Samples        int         `json:"samples"`
	Classes        []string    `json:"classes"`
	Symptoms       []string    `json:"symptoms"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	SymptomLogLik  [][]float64 `json:"symptom_log_lik"`
	SeverityLogLik [][]float64 `json:"severity_log_lik"`
	DurationLogLik [][]float64 `json:"duration_log_lik"`
}

const artifactVersion = 1

var severityIndex = map[string]int{
	SeverityMild:     0,
	SeverityModerate: 1,
	SeveritySevere:   2,
}

var durationIndex = map[string]int{
	DurationHours:  0,
	DurationDays:   1,
	DurationWeeks:  2,
	DurationMonths: 3,
}

// confidenceFloor drops candidates the model is barely confident about.
const confidenceFloor = 0.05

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &art, nil
}

// Save writes the artifact as JSON.
func (a *Artifact) Save(path string) error {
	raw, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (a *Artifact) validate() error {
	if a.Version != artifactVersion {
		return fmt.Errorf("unsupported version %d", a.Version)
	}
	if len(a.Classes) == 0 || len(a.Symptoms) == 0 {
		return fmt.Errorf("empty class or symptom vocabulary")
	}
	if len(a.ClassLogPrior) != len(a.Classes) ||
		len(a.SymptomLogLik) != len(a.Classes) ||
		len(a.SeverityLogLik) != len(a.Classes) ||
		len(a.DurationLogLik) != len(a.Classes) {
		return fmt.Errorf("table row count does not match %d classes", len(a.Classes))
	}
	for c := range a.Classes {
		if len(a.SymptomLogLik[c]) != len(a.Symptoms) {
			return fmt.Errorf("class %q: symptom table has %d columns, want %d",
				a.Classes[c], len(a.SymptomLogLik[c]), len(a.Symptoms))
		}
		if len(a.SeverityLogLik[c]) != len(severityIndex) || len(a.DurationLogLik[c]) != len(durationIndex) {
			return fmt.Errorf("class %q: bad severity/duration table width", a.Classes[c])
		}
	}
	return nil
}

// ModelSource scores symptoms with the trained naive-bayes artifact. The
// artifact is read-only after construction, so one instance serves all
// requests without locking.
type ModelSource struct {
	art        *Artifact
	symptomIdx map[string]int
}

// NewModelSource loads the artifact at path. On any load or validation
// error the caller should fall back to NewRuleSource.
func NewModelSource(path string) (*ModelSource, error) {
	art, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return NewModelSourceFromArtifact(art), nil
}

// NewModelSourceFromArtifact wraps an already loaded artifact. Used by
// cmd/train to sanity-check a freshly trained model.
func NewModelSourceFromArtifact(art *Artifact) *ModelSource {
	idx := make(map[string]int, len(art.Symptoms))
	for i, s := range art.Symptoms {
		idx[s] = i
	}
	return &ModelSource{art: art, symptomIdx: idx}
}

func (s *ModelSource) Name() string { return "model" }

// Candidates builds the feature encoding for the given canonical symptoms
// and returns the posterior class distribution as candidates, keeping at
// most MaxCandidates classes above the confidence floor. Symptoms outside
// the training vocabulary contribute nothing; if none are known the result
// is empty.
func (s *ModelSource) Candidates(symptoms []Symptom) ([]DiseaseCandidate, error) {
	scores := make([]float64, len(s.art.Classes))
	copy(scores, s.art.ClassLogPrior)

	known := 0
	for _, sym := range symptoms {
		si, ok := s.symptomIdx[sym.Name]
		if !ok {
			continue
		}
		known++
		for c := range scores {
			scores[c] += s.art.SymptomLogLik[c][si]
			if vi, ok := severityIndex[sym.Severity]; ok {
				scores[c] += s.art.SeverityLogLik[c][vi]
			}
			if di, ok := durationIndex[sym.Duration]; ok {
				scores[c] += s.art.DurationLogLik[c][di]
			}
		}
	}
	if known == 0 {
		return nil, nil
	}

	probs := softmax(scores)
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return probs[order[i]] > probs[order[j]] })

	var out []DiseaseCandidate
	for _, c := range order {
		if len(out) == MaxCandidates {
			break
		}
		if probs[c] <= confidenceFloor {
			break
		}
		out = append(out, candidateFor(s.art.Classes[c], probs[c]))
	}
	return out, nil
}

func softmax(scores []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	out := make([]float64, len(scores))
	for i, v := range scores {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

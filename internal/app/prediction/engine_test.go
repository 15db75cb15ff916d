package prediction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakySource struct {
	failOn string
}

func (s *flakySource) Name() string { return "flaky" }

func (s *flakySource) Candidates(symptoms []Symptom) ([]DiseaseCandidate, error) {
	var out []DiseaseCandidate
	for _, sym := range symptoms {
		if sym.Name == s.failOn {
			return nil, errors.New("inference blew up")
		}
		out = append(out, candidateFor("flu", 0.6))
	}
	return out, nil
}

func ruleEngine() *Engine {
	return NewEngine(NewRuleSource())
}

func TestPredictEmptySymptoms(t *testing.T) {
	res := ruleEngine().Predict(PredictRequest{})
	assert.Empty(t, res.PredictedDiseases)
	assert.Equal(t, 0.0, res.OverallConfidence)
	assert.Equal(t, RiskLow, res.RiskLevel)
}

func TestPredictUnmappedSymptomMatchesEmpty(t *testing.T) {
	res := ruleEngine().Predict(PredictRequest{Symptoms: []Symptom{
		{Name: "xyzzy", Severity: SeverityMild, Duration: DurationDays},
	}})
	assert.Empty(t, res.PredictedDiseases)
	assert.Equal(t, 0.0, res.OverallConfidence)
	assert.Equal(t, RiskLow, res.RiskLevel)
}

func TestPredictFeverAndCough(t *testing.T) {
	res := ruleEngine().Predict(PredictRequest{Symptoms: []Symptom{
		{Name: "fever", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "cough", Severity: SeverityMild, Duration: DurationDays},
	}})

	require.NotEmpty(t, res.PredictedDiseases)
	names := make([]string, 0, len(res.PredictedDiseases))
	for _, c := range res.PredictedDiseases {
		names = append(names, c.DiseaseName)
	}
	assert.Contains(t, names, "Influenza (Flu)")
	assert.Contains(t, names, "Common Cold")

	// top candidate is flu at 0.70, which must not cross the high band
	assert.Equal(t, "Influenza (Flu)", res.PredictedDiseases[0].DiseaseName)
	assert.InDelta(t, 0.70, res.OverallConfidence, 1e-9)
	assert.Equal(t, RiskMedium, res.RiskLevel)
}

func TestRuleWeightsAreCapped(t *testing.T) {
	for symptom, entries := range ruleTable {
		for _, e := range entries {
			assert.LessOrEqual(t, e.weight, 0.75, "weight for %s -> %s", symptom, e.disease)
			assert.Greater(t, e.weight, 0.0, "weight for %s -> %s", symptom, e.disease)
		}
	}
}

func TestPredictProperties(t *testing.T) {
	// a broad request touching many table rows
	req := PredictRequest{Symptoms: []Symptom{
		{Name: "fever"}, {Name: "cough"}, {Name: "headache"},
		{Name: "nausea"}, {Name: "fatigue"}, {Name: "dizziness"},
		{Name: "runny nose"}, {Name: "skin_rash"},
	}}
	res := ruleEngine().Predict(req)

	require.NotEmpty(t, res.PredictedDiseases)
	assert.LessOrEqual(t, len(res.PredictedDiseases), MaxCandidates)

	seen := map[string]bool{}
	for i, c := range res.PredictedDiseases {
		assert.False(t, seen[c.DiseaseName], "duplicate disease %s", c.DiseaseName)
		seen[c.DiseaseName] = true
		if i > 0 {
			assert.GreaterOrEqual(t,
				res.PredictedDiseases[i-1].ConfidenceScore, c.ConfidenceScore,
				"candidates not sorted descending")
		}
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.RecommendedActions)
	}
	assert.Equal(t, res.PredictedDiseases[0].ConfidenceScore, res.OverallConfidence)
}

func TestPredictIdempotent(t *testing.T) {
	req := PredictRequest{Symptoms: []Symptom{
		{Name: "fever", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "headache", Severity: SeverityMild, Duration: DurationHours},
	}}
	first := ruleEngine().Predict(req)
	second := ruleEngine().Predict(req)
	assert.Equal(t, first, second)
}

func TestPredictNormalizationInsensitive(t *testing.T) {
	variants := []string{"Skin Rash", "skin_rash", " skin rash ", "SKIN  RASH"}
	var base PredictResult
	for i, name := range variants {
		res := ruleEngine().Predict(PredictRequest{Symptoms: []Symptom{{Name: name}}})
		if i == 0 {
			base = res
			require.NotEmpty(t, res.PredictedDiseases)
			continue
		}
		assert.Equal(t, base, res, "variant %q diverged", name)
	}
}

func TestPredictDedupKeepsMaxScore(t *testing.T) {
	// fever -> common_cold 0.55, sore_throat -> common_cold 0.60
	res := ruleEngine().Predict(PredictRequest{Symptoms: []Symptom{
		{Name: "fever"}, {Name: "sore throat"},
	}})
	for _, c := range res.PredictedDiseases {
		if c.DiseaseName == "Common Cold" {
			assert.Equal(t, 0.60, c.ConfidenceScore)
			return
		}
	}
	t.Fatal("Common Cold not in result")
}

func TestPredictSkipsFailingSymptom(t *testing.T) {
	eng := NewEngine(&flakySource{failOn: "cough"})
	res := eng.Predict(PredictRequest{Symptoms: []Symptom{
		{Name: "fever"}, {Name: "cough"}, {Name: "chills"},
	}})
	// fever and chills still contribute; one bad symptom never blocks the rest
	require.Len(t, res.PredictedDiseases, 1)
	assert.Equal(t, "Influenza (Flu)", res.PredictedDiseases[0].DiseaseName)
}

func TestRiskLevelThresholds(t *testing.T) {
	cases := []struct {
		confidence float64
		want       string
	}{
		{0.0, RiskLow},
		{0.4, RiskLow},
		{0.41, RiskMedium},
		{0.7, RiskMedium},
		{0.71, RiskHigh},
		{1.0, RiskHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RiskLevel(tc.confidence), "confidence %v", tc.confidence)
	}
}

package prediction

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedSource(t *testing.T) *ModelSource {
	t.Helper()
	samples := GenerateSamples(42)
	require.NotEmpty(t, samples)
	return NewModelSourceFromArtifact(Train(samples, 42))
}

func TestGenerateSamplesDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSamples(7), GenerateSamples(7))
	assert.NotEqual(t, GenerateSamples(7), GenerateSamples(8))
}

func TestTrainArtifactRoundTrip(t *testing.T) {
	art := Train(GenerateSamples(42), 42)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, art.Save(path))

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, art.Classes, loaded.Classes)
	assert.Equal(t, art.Symptoms, loaded.Symptoms)
	assert.Equal(t, art.SymptomLogLik, loaded.SymptomLogLik)
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, err := NewModelSource(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadArtifactRejectsBadTables(t *testing.T) {
	art := Train(GenerateSamples(1), 1)
	art.SymptomLogLik = art.SymptomLogLik[:1]
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, art.Save(path))

	_, err := LoadArtifact(path)
	assert.Error(t, err)
}

func TestModelSourceFluPresentation(t *testing.T) {
	src := trainedSource(t)
	cands, err := src.Candidates([]Symptom{
		{Name: "fever", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "cough", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "muscle_pain", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "chills", Severity: SeverityModerate, Duration: DurationDays},
	})
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	assert.LessOrEqual(t, len(cands), MaxCandidates)
	for _, c := range cands {
		assert.Greater(t, c.ConfidenceScore, confidenceFloor)
		assert.NotEmpty(t, c.Description)
	}
	// a classic flu presentation should put flu first
	assert.Equal(t, "Influenza (Flu)", cands[0].DiseaseName)
}

func TestModelSourceUnknownSymptom(t *testing.T) {
	src := trainedSource(t)
	cands, err := src.Candidates([]Symptom{{Name: "xyzzy"}})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestModelSourceDeterministic(t *testing.T) {
	src := trainedSource(t)
	in := []Symptom{{Name: "headache", Severity: SeverityModerate, Duration: DurationHours}}
	first, err := src.Candidates(in)
	require.NoError(t, err)
	second, err := src.Candidates(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngineWithModelSourceProperties(t *testing.T) {
	eng := NewEngine(trainedSource(t))
	res := eng.Predict(PredictRequest{Symptoms: []Symptom{
		{Name: "Fever", Severity: SeverityModerate, Duration: DurationDays},
		{Name: "shortness of breath", Severity: SeveritySevere, Duration: DurationDays},
		{Name: "chest pain", Severity: SeverityModerate, Duration: DurationDays},
	}})

	require.NotEmpty(t, res.PredictedDiseases)
	seen := map[string]bool{}
	for i, c := range res.PredictedDiseases {
		assert.False(t, seen[c.DiseaseName])
		seen[c.DiseaseName] = true
		if i > 0 {
			assert.GreaterOrEqual(t, res.PredictedDiseases[i-1].ConfidenceScore, c.ConfidenceScore)
		}
	}
	assert.Equal(t, res.PredictedDiseases[0].ConfidenceScore, res.OverallConfidence)
	assert.Equal(t, RiskLevel(res.OverallConfidence), res.RiskLevel)
}

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesPDF(t *testing.T) {
	data := Data{
		PredictionID: "3f2b1a9c-0000-0000-0000-000000000000",
		Disease:      "Influenza (Flu)",
		Confidence:   0.82,
		RiskLevel:    "high",
		CreatedAt:    time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Symptoms:     []string{"fever", "cough", "fatigue"},
		UserName:     "Jane Roe",
		UserEmail:    "jane@example.com",
	}

	out, err := Generate(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output should start with a PDF header")
	assert.Greater(t, len(out), 1000)
}

func TestGenerateEmptySymptoms(t *testing.T) {
	out, err := Generate(Data{
		PredictionID: "abc",
		Disease:      "Common Cold",
		RiskLevel:    "low",
		CreatedAt:    time.Now(),
		UserName:     "X",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "HealthPredict_Report_Jane_Roe_3f2b1a9c.pdf",
		Filename("Jane Roe", "3f2b1a9c-0000-0000-0000-000000000000"))
	assert.Equal(t, "HealthPredict_Report_Patient_abc.pdf", Filename("  ", "abc"))
}

func TestRecommendationsForRisk(t *testing.T) {
	for _, risk := range []string{"low", "medium", "high", "unknown"} {
		assert.Len(t, RecommendationsForRisk(risk), 5)
	}
	assert.NotEqual(t, RecommendationsForRisk("high"), RecommendationsForRisk("low"))
}

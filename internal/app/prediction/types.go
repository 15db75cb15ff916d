package prediction

// Severity levels reported for symptoms and assigned to diseases.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Symptom duration buckets.
const (
	DurationHours  = "hours"
	DurationDays   = "days"
	DurationWeeks  = "weeks"
	DurationMonths = "months"
)

// Risk levels derived from the top confidence score.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// MaxCandidates caps the number of diseases returned per prediction.
const MaxCandidates = 5

// Symptom is one user-reported symptom.
type Symptom struct {
	Name     string `json:"name" binding:"required"`
	Severity string `json:"severity"`
	Duration string `json:"duration"`
}

// PredictRequest is the engine input. Age, gender and medical history are
// accepted but not used in scoring yet.
type PredictRequest struct {
	Symptoms       []Symptom `json:"symptoms" binding:"required"`
	AdditionalInfo string    `json:"additional_info"`
	Age            *int      `json:"age"`
	Gender         string    `json:"gender"`
	MedicalHistory []string  `json:"medical_history"`
}

// DiseaseCandidate is one scored disease in a prediction result.
type DiseaseCandidate struct {
	DiseaseName        string   `json:"disease_name"`
	ConfidenceScore    float64  `json:"confidence_score"`
	Description        string   `json:"description"`
	Severity           string   `json:"severity"`
	RecommendedActions []string `json:"recommended_actions"`
}

// PredictResult is the engine output: deduplicated candidates sorted by
// confidence descending, plus the derived overall confidence and risk level.
type PredictResult struct {
	PredictedDiseases []DiseaseCandidate `json:"predicted_diseases"`
	OverallConfidence float64            `json:"overall_confidence"`
	RiskLevel         string             `json:"risk_level"`
}

// CandidateSource scores a list of canonical symptoms into disease candidates.
// Implementations must be safe for concurrent use after construction.
type CandidateSource interface {
	Name() string
	Candidates(symptoms []Symptom) ([]DiseaseCandidate, error)
}

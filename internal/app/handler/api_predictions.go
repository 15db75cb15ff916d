package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/middleware"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/report"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
)

const predictionDisclaimer = "This prediction is for informational purposes only and is not " +
	"a substitute for professional medical advice, diagnosis, or treatment. Always consult " +
	"with qualified healthcare professionals for medical concerns."

// POST /api/predictions/predict
func (h *Handler) ApiPredict(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req prediction.PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	result := h.Engine.Predict(req)

	symptomsJSON, err := json.Marshal(req.Symptoms)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	diseasesJSON, err := json.Marshal(result.PredictedDiseases)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	pred := &ds.Prediction{
		UserID:            userID,
		Symptoms:          datatypes.JSON(symptomsJSON),
		AdditionalInfo:    req.AdditionalInfo,
		PredictedDiseases: datatypes.JSON(diseasesJSON),
		ConfidenceScore:   result.OverallConfidence,
		RiskLevel:         result.RiskLevel,
	}
	if err := h.Repository.CreatePrediction(pred); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"id":                 pred.ID,
		"predicted_diseases": result.PredictedDiseases,
		"overall_confidence": result.OverallConfidence,
		"risk_level":         result.RiskLevel,
		"created_at":         pred.CreatedAt,
		"disclaimer":         predictionDisclaimer,
	}, 1, gin.H{"source": h.Engine.SourceName()})
}

// GET /api/predictions/history?limit=&offset=
func (h *Handler) ApiPredictionHistory(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	limit, offset := paginationParams(ctx, 20, 100)

	preds, err := h.Repository.ListPredictionsByUser(userID, limit, offset)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	total, err := h.Repository.CountPredictionsByUser(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, preds, total, gin.H{"limit": limit, "offset": offset})
}

// GET /api/predictions/:id
func (h *Handler) ApiGetPrediction(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	pred, err := h.Repository.GetPredictionByID(id, userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("prediction not found"))
		return
	}

	jsonResponse(ctx, gin.H{"prediction": pred}, 1, gin.H{"id": id})
}

// GET /api/predictions/:id/report
func (h *Handler) ApiDownloadReport(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	pred, err := h.Repository.GetPredictionByID(id, userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("prediction not found"))
		return
	}
	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	var symptoms []prediction.Symptom
	if err := json.Unmarshal(pred.Symptoms, &symptoms); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	var diseases []prediction.DiseaseCandidate
	if err := json.Unmarshal(pred.PredictedDiseases, &diseases); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	topDisease := "Undetermined"
	if len(diseases) > 0 {
		topDisease = diseases[0].DiseaseName
	}
	symptomNames := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		symptomNames = append(symptomNames, s.Name)
	}

	pdf, err := report.Generate(report.Data{
		PredictionID: pred.ID.String(),
		Disease:      topDisease,
		Confidence:   pred.ConfidenceScore,
		RiskLevel:    pred.RiskLevel,
		CreatedAt:    pred.CreatedAt,
		Symptoms:     symptomNames,
		UserName:     user.Name,
		UserEmail:    user.Email,
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	filename := report.Filename(user.Name, pred.ID.String())

	// archive a copy, the download itself must not depend on MinIO
	if h.Reports != nil {
		if _, _, err := h.Reports.UploadReport(ctx.Request.Context(), filename, pdf); err != nil {
			log.WithError(err).Warn("report archive upload failed")
		}
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/predictions/stats/summary
func (h *Handler) ApiPredictionStats(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	total, err := h.Repository.CountPredictionsByUser(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := h.Repository.CountUserPredictionsSince(userID, monthStart)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	highRisk, err := h.Repository.CountUserPredictionsByRisk(userID, prediction.RiskHigh)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	recent, err := h.Repository.ListPredictionsByUser(userID, 5, 0)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"total_predictions": total,
		"this_month":        thisMonth,
		"high_risk":         highRisk,
		"recent":            recent,
	}, 1, gin.H{})
}

func paginationParams(ctx *gin.Context, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	if v, err := strconv.Atoi(ctx.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := 0
	if v, err := strconv.Atoi(ctx.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/middleware"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
)

// GET /api/admin/dashboard
func (h *Handler) ApiAdminDashboard(ctx *gin.Context) {
	totalUsers, err := h.Repository.CountUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	activeUsers, err := h.Repository.CountActiveUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	newUsersWeek, err := h.Repository.CountUsersCreatedSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	totalPredictions, err := h.Repository.CountPredictions()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	avgConfidence, err := h.Repository.AveragePredictionConfidence()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	riskDist, err := h.Repository.RiskLevelDistribution()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"total_users":        totalUsers,
		"active_users":       activeUsers,
		"new_users_week":     newUsersWeek,
		"total_predictions":  totalPredictions,
		"average_confidence": avgConfidence,
		"risk_distribution":  riskDist,
	}, 1, gin.H{})
}

// GET /api/admin/users?limit=&offset=
func (h *Handler) ApiAdminListUsers(ctx *gin.Context) {
	limit, offset := paginationParams(ctx, 20, 100)

	users, err := h.Repository.ListUsers(limit, offset)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	total, err := h.Repository.CountUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, users, total, gin.H{"limit": limit, "offset": offset})
}

// GET /api/admin/users/:id
func (h *Handler) ApiAdminGetUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}
	predictions, err := h.Repository.CountPredictionsByUser(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "prediction_count": predictions}, 1, gin.H{"id": id})
}

// PUT /api/admin/users/:id/toggle-status
func (h *Handler) ApiAdminToggleUserStatus(ctx *gin.Context) {
	adminID, _ := middleware.GetCurrentUserID(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if id == adminID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "cannot change status of your own account"})
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}

	newStatus := !user.IsActive
	if err := h.Repository.UpdateUser(id, map[string]interface{}{"is_active": newStatus}); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"id": id, "is_active": newStatus}, 1, gin.H{})
}

// GET /api/admin/predictions?limit=&offset=
func (h *Handler) ApiAdminListPredictions(ctx *gin.Context) {
	limit, offset := paginationParams(ctx, 20, 100)

	preds, err := h.Repository.ListPredictions(limit, offset)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	total, err := h.Repository.CountPredictions()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, preds, total, gin.H{"limit": limit, "offset": offset})
}

// GET /api/admin/analytics/usage?days=
func (h *Handler) ApiAdminUsageAnalytics(ctx *gin.Context) {
	days := 30
	if v, err := strconv.Atoi(ctx.Query("days")); err == nil && v > 0 {
		days = v
	}
	if days > 365 {
		days = 365
	}
	since := time.Now().AddDate(0, 0, -days)

	preds, err := h.Repository.ListPredictionsSince(since)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	newUsers, err := h.Repository.CountUsersCreatedSince(since)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	perDay := make(map[string]int64)
	diseaseCounts := make(map[string]int64)
	for _, p := range preds {
		perDay[p.CreatedAt.Format("2006-01-02")]++

		var diseases []prediction.DiseaseCandidate
		if err := json.Unmarshal(p.PredictedDiseases, &diseases); err != nil || len(diseases) == 0 {
			continue
		}
		diseaseCounts[diseases[0].DiseaseName]++
	}

	type diseaseCount struct {
		Disease string `json:"disease"`
		Count   int64  `json:"count"`
	}
	topDiseases := make([]diseaseCount, 0, len(diseaseCounts))
	for name, n := range diseaseCounts {
		topDiseases = append(topDiseases, diseaseCount{Disease: name, Count: n})
	}
	sort.Slice(topDiseases, func(i, j int) bool {
		if topDiseases[i].Count != topDiseases[j].Count {
			return topDiseases[i].Count > topDiseases[j].Count
		}
		return topDiseases[i].Disease < topDiseases[j].Disease
	})
	if len(topDiseases) > 5 {
		topDiseases = topDiseases[:5]
	}

	jsonResponse(ctx, gin.H{
		"predictions_total": len(preds),
		"predictions_day":   perDay,
		"top_diseases":      topDiseases,
		"new_users":         newUsers,
	}, 1, gin.H{"days": days})
}

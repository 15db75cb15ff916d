package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/middleware"
)

// GET /api/users/profile
func (h *Handler) ApiGetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}

	total, err := h.Repository.CountPredictionsByUser(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "prediction_count": total}, 1, gin.H{})
}

// PUT /api/users/profile
func (h *Handler) ApiUpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	type requestBody struct {
		Name  string `json:"name" binding:"omitempty,min=2,max=100"`
		Email string `json:"email" binding:"omitempty,email"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.Name != "" {
		fields["name"] = body.Name
	}
	if body.Email != "" {
		if existing, err := h.Repository.GetUserByEmail(body.Email); err == nil && existing != nil && existing.ID != userID {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "email already in use"})
			return
		}
		fields["email"] = body.Email
	}
	if len(fields) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	if err := h.Repository.UpdateUser(userID, fields); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"user": user}, 1, gin.H{})
}

// DELETE /api/users/account
func (h *Handler) ApiDeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	if err := h.Repository.DeleteUser(userID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if h.SessionService != nil {
		if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
			_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
		}
	}
	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	jsonResponse(ctx, gin.H{"deleted": true}, 1, gin.H{})
}

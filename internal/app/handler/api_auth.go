package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/middleware"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/auth"
)

// issueSession generates the JWT and, when Redis is available, a session
// cookie for the user.
func (h *Handler) issueSession(ctx *gin.Context, user *ds.User) (string, string, error) {
	token, err := h.JWTService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}

	sessionID := ""
	if h.SessionService != nil {
		sessionID = uuid.New().String()
		sessionData := auth.SessionData{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		}
		if err := h.SessionService.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
			return "", "", err
		}
		ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return token, sessionID, nil
}

// POST /api/auth/register
func (h *Handler) ApiRegister(ctx *gin.Context) {
	type requestBody struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name" binding:"required,min=2,max=100"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if existing, err := h.Repository.GetUserByEmail(body.Email); err == nil && existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := &ds.User{
		Email:        body.Email,
		Name:         body.Name,
		PasswordHash: string(hashedPassword),
		Role:         ds.RoleUser,
		IsActive:     true,
	}
	if err := h.Repository.CreateUser(user); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// best effort, registration succeeds even if the mail does not go out
	if h.Mailer != nil {
		h.Mailer.SendWelcome(user.Email, user.Name)
	}

	token, sessionID, err := h.issueSession(ctx, user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "token": token, "session_id": sessionID}, 1, gin.H{})
}

// POST /api/auth/login
func (h *Handler) ApiLogin(ctx *gin.Context) {
	type requestBody struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByEmail(body.Email)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if !user.IsActive {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "account is deactivated"})
		return
	}

	token, sessionID, err := h.issueSession(ctx, user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "token": token, "session_id": sessionID}, 1, gin.H{})
}

// POST /api/auth/logout
func (h *Handler) ApiLogout(ctx *gin.Context) {
	if h.SessionService != nil {
		if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
			_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
		}
	}
	ctx.SetCookie("session_id", "", -1, "/", "", false, true)
	jsonResponse(ctx, gin.H{"message": "logged out"}, 1, gin.H{})
}

// GET /api/auth/me
func (h *Handler) ApiMe(ctx *gin.Context) {
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
	jsonResponse(ctx, gin.H{"user": user}, 1, gin.H{})
}

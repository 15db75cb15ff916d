package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/config"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/middleware"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/auth"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/mail"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/storage"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/repository"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
	Engine         *prediction.Engine
	Mailer         *mail.Mailer
	Reports        *storage.MinIO
}

func NewHandler(r *repository.Repository, cfg *config.Config, jwtSvc *auth.JWTService,
	sessionSvc *auth.SessionService, engine *prediction.Engine, mailer *mail.Mailer,
	reports *storage.MinIO) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
		Engine:         engine,
		Mailer:         mailer,
		Reports:        reports,
	}
}

// RegisterHandler registers all routes.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.Use(CORSMiddleware())

	router.GET("/", h.ApiRoot)
	router.GET("/health", h.ApiHealth)

	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.ApiRegister)
			authGroup.POST("/login", h.ApiLogin)
			authGroup.POST("/logout", middleware.AuthMiddleware(authSvc), h.ApiLogout)
			authGroup.GET("/me", middleware.AuthMiddleware(authSvc), h.ApiMe)
		}

		preds := api.Group("/predictions", middleware.AuthMiddleware(authSvc))
		{
			preds.POST("/predict", h.ApiPredict)
			preds.GET("/history", h.ApiPredictionHistory)
			preds.GET("/stats/summary", h.ApiPredictionStats)
			preds.GET("/:id", h.ApiGetPrediction)
		}
		// The report download also accepts the token as a query parameter so
		// the browser can open it as a plain link.
		api.GET("/predictions/:id/report", queryTokenMiddleware(), middleware.AuthMiddleware(authSvc), h.ApiDownloadReport)

		users := api.Group("/users", middleware.AuthMiddleware(authSvc))
		{
			users.GET("/profile", h.ApiGetProfile)
			users.PUT("/profile", h.ApiUpdateProfile)
			users.DELETE("/account", h.ApiDeleteAccount)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(authSvc), middleware.RequireAdminMiddleware())
		{
			admin.GET("/dashboard", h.ApiAdminDashboard)
			admin.GET("/users", h.ApiAdminListUsers)
			admin.GET("/users/:id", h.ApiAdminGetUser)
			admin.PUT("/users/:id/toggle-status", h.ApiAdminToggleUserStatus)
			admin.GET("/predictions", h.ApiAdminListPredictions)
			admin.GET("/analytics/usage", h.ApiAdminUsageAnalytics)
		}

		api.GET("/diseases", h.ApiListDiseases)
		api.GET("/symptoms", h.ApiListSymptoms)

		api.POST("/contact", h.ApiContact)
	}
}

func (h *Handler) ApiRoot(ctx *gin.Context) {
	jsonResponse(ctx, gin.H{"service": "healthpredict", "engine": h.Engine.SourceName()}, 1, gin.H{})
}

func (h *Handler) ApiHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// CORSMiddleware is permissive; the frontend runs on a different origin in
// development.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// queryTokenMiddleware lifts an ?auth= token into the Authorization header
// before the auth middleware runs.
func queryTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := c.Query("auth"); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		c.Next()
	}
}

// errorHandler logs and renders an error envelope.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
		"count":  count,
		"meta":   meta,
	})
}

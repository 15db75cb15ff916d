package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/config"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/auth"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/repository"
)

type testEnv struct {
	router  *gin.Engine
	handler *Handler
	mock    sqlmock.Sqlmock
	jwt     *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	sessionSvc := auth.NewSessionServiceWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	jwtSvc := auth.NewJWTService("test-secret")
	engine := prediction.NewEngine(prediction.NewRuleSource())

	h := NewHandler(repository.NewWithDB(gormDB), &config.Config{}, jwtSvc, sessionSvc, engine, nil, nil)
	router := gin.New()
	h.RegisterHandler(router)

	return &testEnv{router: router, handler: h, mock: mock, jwt: jwtSvc}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func userRows(u *ds.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "is_active", "created_at", "updated_at"}).
		AddRow(u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.IsActive, time.Now(), time.Now())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodOptions, "/api/contact", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/predictions/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteForbiddenForRegularUser(t *testing.T) {
	env := newTestEnv(t)
	token, err := env.jwt.Generate(uuid.New(), "user@example.com", ds.RoleUser)
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	user := &ds.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane", Role: ds.RoleUser, IsActive: true}
	token, err := env.jwt.Generate(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).WillReturnRows(userRows(user))

	w := env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestPredictPersistsAndResponds(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	token, err := env.jwt.Generate(userID, "jane@example.com", ds.RoleUser)
	require.NoError(t, err)

	env.mock.ExpectBegin()
	env.mock.ExpectExec(`INSERT INTO "predictions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	env.mock.ExpectCommit()

	w := env.do(http.MethodPost, "/api/predictions/predict", token, gin.H{
		"symptoms": []gin.H{
			{"name": "fever", "severity": "moderate", "duration": "days"},
			{"name": "cough", "severity": "mild", "duration": "days"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			PredictedDiseases []prediction.DiseaseCandidate `json:"predicted_diseases"`
			RiskLevel         string                        `json:"risk_level"`
			Disclaimer        string                        `json:"disclaimer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.PredictedDiseases)
	assert.LessOrEqual(t, len(resp.Data.PredictedDiseases), prediction.MaxCandidates)
	assert.NotEmpty(t, resp.Data.RiskLevel)
	assert.NotEmpty(t, resp.Data.Disclaimer)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestPredictRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	token, err := env.jwt.Generate(uuid.New(), "jane@example.com", ds.RoleUser)
	require.NoError(t, err)

	w := env.do(http.MethodPost, "/api/predictions/predict", token, gin.H{"additional_info": "no symptoms field"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPredictionUnknownIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	token, err := env.jwt.Generate(userID, "jane@example.com", ds.RoleUser)
	require.NoError(t, err)

	emptyRows := sqlmock.NewRows([]string{"id"})
	env.mock.ExpectQuery(`SELECT \* FROM "predictions" WHERE`).WillReturnRows(emptyRows)

	w := env.do(http.MethodGet, "/api/predictions/"+uuid.New().String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryTokenAcceptedOnReportRoute(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	token, err := env.jwt.Generate(userID, "jane@example.com", ds.RoleUser)
	require.NoError(t, err)

	// unknown prediction: auth passes via ?auth=, lookup 404s
	env.mock.ExpectQuery(`SELECT \* FROM "predictions" WHERE`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := env.do(http.MethodGet, "/api/predictions/"+uuid.New().String()+"/report?auth="+token, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no token at all stays unauthorized
	w = env.do(http.MethodGet, "/api/predictions/"+uuid.New().String()+"/report", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionCookieAuthenticates(t *testing.T) {
	env := newTestEnv(t)
	user := &ds.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane", Role: ds.RoleUser, IsActive: true}

	sessionID := uuid.New().String()
	require.NoError(t, env.handler.SessionService.Create(context.Background(), sessionID, auth.SessionData{
		UserID: user.ID, Email: user.Email, Role: user.Role,
	}))

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).WillReturnRows(userRows(user))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

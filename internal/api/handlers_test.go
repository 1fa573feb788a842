package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alcyxob/irontrack/internal/api"
	"alcyxob/irontrack/internal/config"
	"alcyxob/irontrack/internal/domain"
	"alcyxob/irontrack/internal/repository/csvfile"
	"alcyxob/irontrack/internal/service"
	"alcyxob/irontrack/internal/stats"
)

func newTestRouter(t *testing.T, authCfg config.AuthConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := csvfile.NewStore(filepath.Join(t.TempDir(), "workouts.csv"))
	require.NoError(t, store.Initialize(context.Background()))

	router := gin.New()
	api.SetupRoutes(router,
		service.NewAuthService(authCfg),
		service.NewWorkoutService(store),
		stats.NewAnalyzer(store),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestPing(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})
	rec := doJSON(t, router, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestLogSetAndListByDate(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})

	var logged domain.WorkoutSet
	rec := doJSON(t, router, http.MethodPost, "/api/v1/sets", api.LogSetRequest{
		Date: "2025-05-01", Category: "Chest", Exercise: "Dumbbell Fly", Weight: 12.5, Reps: 10,
	}, &logged)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 10, logged.Reps)

	var resp api.SetsResponse
	rec = doJSON(t, router, http.MethodGet, "/api/v1/sets?date=2025-05-01&only_logged=true", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, logged, resp.Sets[0])
}

func TestLogSet_RejectsZeroReps(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})
	rec := doJSON(t, router, http.MethodPost, "/api/v1/sets", api.LogSetRequest{
		Date: "2025-05-01", Category: "Chest", Exercise: "Dumbbell Fly", Weight: 12.5, Reps: 0,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterExerciseShowsUpInCatalog(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/exercises", api.RegisterExerciseRequest{
		Category: "chest", Exercise: "incline press",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var exercisesResp struct {
		Exercises []string `json:"exercises"`
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/catalog/categories/Chest/exercises", nil, &exercisesResp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Barbell Bench Press", "Dumbbell Fly", "Incline Press"}, exercisesResp.Exercises)

	var categoriesResp struct {
		Categories []string `json:"categories"`
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/catalog/categories", nil, &categoriesResp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, categoriesResp.Categories, "Chest")
}

func TestStatsEndpoints(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})

	for _, reps := range []int{10, 8} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sets", api.LogSetRequest{
			Date: "2025-05-05", Category: "Chest", Exercise: "Dumbbell Fly", Weight: 10, Reps: reps,
		}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var progressResp struct {
		Progress []stats.ProgressPoint `json:"progress"`
	}
	rec := doJSON(t, router, http.MethodGet, "/api/v1/stats/progress/Dumbbell%20Fly", nil, &progressResp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, progressResp.Progress, 1)
	assert.Equal(t, stats.ProgressPoint{Date: "2025-05-05", Reps: 18, Weight: 20, Volume: 180}, progressResp.Progress[0])

	var consistencyResp struct {
		Consistency []stats.ConsistencyBucket `json:"consistency"`
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/stats/consistency?period=week", nil, &consistencyResp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, consistencyResp.Consistency, 1)
	assert.Equal(t, 1, consistencyResp.Consistency[0].WorkoutDays)

	var topResp struct {
		Exercises []stats.DistributionEntry `json:"exercises"`
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/stats/exercises/top?metric=sets&n=1", nil, &topResp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, topResp.Exercises, 1)
	assert.Equal(t, stats.DistributionEntry{Label: "Dumbbell Fly", Value: 2}, topResp.Exercises[0])
}

func TestStatsEndpoints_InvalidParams(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/stats/consistency?period=decade", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/stats/categories?metric=happiness", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/stats/exercises/top?n=zero", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportCSV(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/export?format=csv", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "date,category,exercise,weight,reps")
	// Freshly initialized store exports its placeholder rows too.
	assert.Contains(t, rec.Body.String(), "Barbell Bench Press")
}

func TestAuth_ProtectsAPIWhenConfigured(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	router := newTestRouter(t, config.AuthConfig{
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		Expiration:   time.Hour,
	})

	// No token -> unauthorized.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/sets", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Login, then retry with the bearer token.
	var loginResp api.LoginResponse
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Password: "hunter2"}, &loginResp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, loginResp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	authedRec := httptest.NewRecorder()
	router.ServeHTTP(authedRec, req)
	assert.Equal(t, http.StatusOK, authedRec.Code)
}

func TestAuth_LoginRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	router := newTestRouter(t, config.AuthConfig{
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		Expiration:   time.Hour,
	})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

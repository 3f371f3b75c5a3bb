package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"user-status-service/internal/clock"
	"user-status-service/internal/database"
	"user-status-service/internal/emoji"
	"user-status-service/internal/metrics"
	"user-status-service/internal/repository"
	"user-status-service/internal/response"
	"user-status-service/internal/service"
)

const (
	testSecret   = "test-secret"
	testBasePath = "/api/user-status"
)

// setupTestRouter creates a router backed by an in-memory SQLite database
func setupTestRouter(t *testing.T, basePath string, now int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	validator := emoji.NewValidator(true)
	svc := service.NewStatusService(
		repository.NewStatusRepository(db),
		clock.NewFixed(now),
		validator,
		nil,
		m,
		zap.NewNop(),
	)

	return Setup(Config{
		DB:             db,
		Logger:         zap.NewNop(),
		JWTSecret:      testSecret,
		BasePath:       basePath,
		AllowedOrigins: []string{"*"},
		Metrics:        m,
		StatusService:  svc,
		EmojiValidator: validator,
	})
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(router *gin.Engine, method, path, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "Data field should be an object")
	return data
}

func TestMetricsEndpoint_RootPath(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	w := doRequest(router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	body := w.Body.String()
	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsEndpoint_NotUnderBasePath(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	w := doRequest(router, http.MethodGet, testBasePath+"/metrics", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	for _, path := range []string{"/health", "/ready", testBasePath + "/health", testBasePath + "/ready"} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCapabilities_NoAuthentication(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	w := doRequest(router, http.MethodGet, testBasePath+"/capabilities", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	capability, ok := data["user_status"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, capability["enabled"])
	assert.Equal(t, true, capability["supports_emoji"])
}

func TestStatusRoutes_RequireAuthentication(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, testBasePath + "/statuses"},
		{http.MethodGet, testBasePath + "/statuses/john.doe"},
		{http.MethodGet, testBasePath + "/user_status"},
		{http.MethodPut, testBasePath + "/user_status"},
		{http.MethodDelete, testBasePath + "/user_status"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestStatusRoutes_Lifecycle(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)
	auth := bearer(t, "john.doe")

	w := doRequest(router, http.MethodGet, testBasePath+"/user_status", auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := []byte(`{"statusType":"busy","statusIcon":"📱","message":"In a phone call","clearAt":2000}`)
	w = doRequest(router, http.MethodPut, testBasePath+"/user_status", auth, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "john.doe", data["userId"])
	assert.Equal(t, "busy", data["statusType"])
	assert.Equal(t, "📱", data["statusIcon"])
	assert.Equal(t, float64(1000), data["createdAt"])
	assert.Equal(t, float64(2000), data["clearAt"])

	w = doRequest(router, http.MethodGet, testBasePath+"/statuses/john.doe", bearer(t, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "In a phone call", decodeData(t, w)["message"])

	w = doRequest(router, http.MethodPut, testBasePath+"/user_status", auth, []byte(`{"statusType":"away"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `Status-type \"away\" is not supported`)

	w = doRequest(router, http.MethodDelete, testBasePath+"/user_status", auth, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, testBasePath+"/user_status", auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, testBasePath+"/statuses/john.doe", auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusRoutes_List(t *testing.T) {
	router := setupTestRouter(t, testBasePath, 1000)

	for _, user := range []string{"admin", "user1", "user2"} {
		w := doRequest(router, http.MethodPut, testBasePath+"/user_status", bearer(t, user), []byte(`{"statusType":"available"}`))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(router, http.MethodGet, testBasePath+"/statuses?limit=2&offset=1", bearer(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "user1", items[0].(map[string]interface{})["userId"])
	assert.Equal(t, "user2", items[1].(map[string]interface{})["userId"])
	assert.NotEmpty(t, resp.RequestID)
}

func TestSetup_EmptyBasePath(t *testing.T) {
	router := setupTestRouter(t, "", 1000)

	w := doRequest(router, http.MethodPut, "/user_status", bearer(t, "john.doe"), []byte(`{"statusType":"unavailable"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

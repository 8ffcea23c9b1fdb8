package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	_ "time/tzdata"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Setenv("JWT_SECRET", "test-secret-key")
}

// TestContext holds everything a handler test needs.
type TestContext struct {
	Router *gin.Engine
	DB     *gorm.DB
	Cfg    *config.Config
}

// SetupTestContext wires the full router against a fresh in-memory
// database. Each test gets its own named shared-cache DB so parallel
// tests never see each other's rows.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Staff{},
		&models.Service{},
		&models.ServiceLog{},
		&models.DailyClosing{},
	)
	require.NoError(t, err, "failed to migrate test database")

	config.DB = db

	cfg := &config.Config{
		AuthMode:       config.AuthModePassword,
		JWTSecret:      "test-secret-key",
		JWTExpiryHours: 24,
		FrontendURL:    "http://localhost:5173",
	}

	return &TestContext{
		Router: routes.SetupRouter(cfg, db),
		DB:     db,
		Cfg:    cfg,
	}
}

// SetupTestDB is SetupTestContext without the router, for service-level
// tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestContext(t).DB
}

// PerformRequest runs one request through the router. A non-nil body is
// JSON-encoded; a non-empty token goes into the Authorization header.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeBody unmarshals a recorded JSON response.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// DecodeInto unmarshals a recorded JSON response into a typed target.
func DecodeInto(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

// RegisterOwner registers a password-mode owner account and returns its
// token and salon id.
func RegisterOwner(t *testing.T, tc *TestContext, email, salonName, timezone string) (string, string) {
	t.Helper()
	w := PerformRequest(tc.Router, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"salon_name": salonName,
		"timezone":   timezone,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := DecodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	salon, _ := body["salon"].(map[string]interface{})
	salonID, _ := salon["id"].(string)
	require.NotEmpty(t, salonID)
	return token, salonID
}

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brainvault/internal/auth"
	"brainvault/internal/cache"
	"brainvault/internal/config"
	"brainvault/internal/db"
	"brainvault/internal/events"
	"brainvault/internal/handler"
	"brainvault/internal/middleware"
	"brainvault/internal/repository"
	"brainvault/internal/service"
	"brainvault/internal/storage"
)

func newApp(t *testing.T, rateLimit float64) *echo.Echo {
	t.Helper()
	gormDB, err := db.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	files, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	log := zap.NewNop()
	cacheClient := cache.New("", "", 0)
	users := repository.NewUserRepository(gormDB)
	contents := repository.NewContentRepository(gormDB)
	links := repository.NewShareLinkRepository(gormDB)
	jwtService := auth.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(users, jwtService, tokenStore, log)
	contentService := service.NewContentService(contents, files, events.NopPublisher{}, log)
	shareService := service.NewShareService(links, users, contents, cacheClient, events.NopPublisher{}, log, time.Minute)

	cfg := &config.Config{CORSAllowOrigins: []string{"*"}, PublicRateLimit: rateLimit}
	e := echo.New()
	Register(e, cfg, log,
		middleware.JWT(jwtService, tokenStore),
		handler.NewAuthHandler(authService, log),
		handler.NewContentHandler(contentService, log),
		handler.NewBrainHandler(shareService, log),
	)
	return e
}

type call struct {
	method string
	path   string
	body   string
	token  string
}

func serve(e *echo.Echo, c call) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
	if c.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestSecondBrainFlow(t *testing.T) {
	e := newApp(t, 1000)

	rec, _ := serve(e, call{method: http.MethodPost, path: "/api/v1/signup", body: `{"username":"alice123","password":"Passw0rd!"}`})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := serve(e, call{method: http.MethodPost, path: "/api/v1/signup", body: `{"username":"alice123","password":"Other1!"}`})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "user already exists", body["message"])

	rec, body = serve(e, call{method: http.MethodPost, path: "/api/v1/signin", body: `{"username":"alice123","password":"Passw0rd!"}`})
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["token"].(string)
	_, hasRefresh := body["refresh_token"]
	assert.False(t, hasRefresh, "refresh tokens need redis")

	rec, body = serve(e, call{method: http.MethodPost, path: "/api/v1/content", body: `{"title":"t","type":"other"}`, token: token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "link OR description is required", body["message"])
	assert.Equal(t, false, body["success"])

	rec, _ = serve(e, call{method: http.MethodPost, path: "/api/v1/content", body: `{"title":"note","type":"other","description":"remember this"}`, token: token})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = serve(e, call{method: http.MethodPost, path: "/api/v1/brain/share", body: `{"share":true}`, token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	hash := body["hash"].(string)
	assert.Regexp(t, `^[A-Za-z0-9]{10}$`, hash)

	_, body = serve(e, call{method: http.MethodPost, path: "/api/v1/brain/share", body: `{"share":true}`, token: token})
	assert.Equal(t, hash, body["hash"])

	rec, body = serve(e, call{method: http.MethodGet, path: "/api/v1/brain/" + hash})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice123", body["username"])
	assert.Len(t, body["content"], 1)

	rec, body = serve(e, call{method: http.MethodGet, path: "/api/v1/brain/Zz9Zz9Zz9Z"})
	assert.Equal(t, http.StatusLengthRequired, rec.Code)
	assert.Equal(t, "input is invalid", body["message"])

	rec, _ = serve(e, call{method: http.MethodPost, path: "/api/v1/brain/share", body: `{"share":false}`, token: token})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(e, call{method: http.MethodGet, path: "/api/v1/brain/" + hash})
	assert.Equal(t, http.StatusLengthRequired, rec.Code)

	rec, _ = serve(e, call{method: http.MethodGet, path: "/api/v1/content"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = serve(e, call{method: http.MethodGet, path: "/api/v1/content", token: token + "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSignupRejectsOversizedMultibytePassword(t *testing.T) {
	e := newApp(t, 1000)

	// 30 characters pass the request validator but encode to 90 bytes
	body := `{"username":"bob123","password":"` + strings.Repeat("€", 30) + `"}`
	rec, resp := serve(e, call{method: http.MethodPost, path: "/api/v1/signup", body: body})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_TOO_LONG", resp["code"])
	assert.Equal(t, false, resp["success"])

	rec, _ = serve(e, call{method: http.MethodPost, path: "/api/v1/signin", body: body})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	e := newApp(t, 1000)

	rec, _ := serve(e, call{method: http.MethodGet, path: "/healthz"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec, _ = serve(e, call{method: http.MethodGet, path: "/metrics"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "brainvault_http_requests_total")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/content", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestPublicBrainRateLimit(t *testing.T) {
	e := newApp(t, 1)

	rec, _ := serve(e, call{method: http.MethodGet, path: "/api/v1/brain/Zz9Zz9Zz9Z"})
	assert.Equal(t, http.StatusLengthRequired, rec.Code)

	rec, body := serve(e, call{method: http.MethodGet, path: "/api/v1/brain/Zz9Zz9Zz9Z"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

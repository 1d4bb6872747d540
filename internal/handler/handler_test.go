package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brainvault/internal/auth"
	"brainvault/internal/cache"
	"brainvault/internal/errors"
	"brainvault/internal/middleware"
	"brainvault/internal/model"
	"brainvault/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Signin(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Signout(ctx context.Context, claims *auth.Claims, refreshToken string) error {
	args := m.Called(ctx, claims, refreshToken)
	return args.Error(0)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, ownerID uuid.UUID, sub service.Submission) (*model.Content, error) {
	args := m.Called(ctx, ownerID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, ownerID uuid.UUID, contentType string) ([]model.Content, error) {
	args := m.Called(ctx, ownerID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, ownerID, contentID uuid.UUID) error {
	args := m.Called(ctx, ownerID, contentID)
	return args.Error(0)
}

func (m *MockContentService) Download(ctx context.Context, ownerID, contentID uuid.UUID) (*model.Content, error) {
	args := m.Called(ctx, ownerID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Share(ctx context.Context, userID uuid.UUID, enabled bool) (string, error) {
	args := m.Called(ctx, userID, enabled)
	return args.String(0), args.Error(1)
}

func (m *MockShareService) Resolve(ctx context.Context, hash string) (*service.PublicBrain, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PublicBrain), args.Error(1)
}

type testServer struct {
	e       *echo.Echo
	auth    *MockAuthService
	content *MockContentService
	share   *MockShareService
	userID  uuid.UUID
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	jwtService := auth.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	tokenStore := auth.NewTokenStore(cache.New("", "", 0))

	s := &testServer{
		e:       echo.New(),
		auth:    new(MockAuthService),
		content: new(MockContentService),
		share:   new(MockShareService),
		userID:  uuid.New(),
	}
	token, err := jwtService.GenerateAccessToken(s.userID, "alice123")
	require.NoError(t, err)
	s.token = token

	log := zap.NewNop()
	authHandler := NewAuthHandler(s.auth, log)
	contentHandler := NewContentHandler(s.content, log)
	brainHandler := NewBrainHandler(s.share, log)

	s.e.Validator = NewCustomValidator()
	s.e.HTTPErrorHandler = middleware.ErrorHandler(log)

	api := s.e.Group("/api/v1")
	api.POST("/signup", authHandler.Signup)
	api.POST("/signin", authHandler.Signin)
	api.POST("/token/refresh", authHandler.Refresh)
	api.GET("/brain/:shareLink", brainHandler.Get)

	secured := api.Group("", middleware.JWT(jwtService, tokenStore))
	secured.POST("/signout", authHandler.Signout)
	secured.POST("/content", contentHandler.Create)
	secured.GET("/content", contentHandler.List)
	secured.DELETE("/content", contentHandler.Delete)
	secured.GET("/content/:id/download", contentHandler.Download)
	secured.POST("/brain/share", brainHandler.Share)
	return s
}

func (s *testServer) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"username":"alice123","password":"Passw0rd!"}`,
			setup: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "alice123", "Passw0rd!").Return(&model.User{Username: "alice123"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice123","password":"Other1!"}`,
			setup: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "alice123", "Other1!").Return(nil, errors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "short password",
			body:       `{"username":"alice123","password":"abc"}`,
			setup:      func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			setup:      func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name: "store failure is hidden",
			body: `{"username":"alice123","password":"Passw0rd!"}`,
			setup: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "alice123", "Passw0rd!").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setup(s.auth)

			rec := s.do(http.MethodPost, "/api/v1/signup", tt.body, false)
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantCode, body["code"])
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			} else {
				assert.Equal(t, true, body["success"])
			}
			s.auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_SigninAndSignout(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("Signin", mock.Anything, "alice123", "Passw0rd!").Return("access", "refresh", nil)
	s.auth.On("Signin", mock.Anything, "alice123", "wrong").Return("", "", errors.ErrInvalidCredentials)
	s.auth.On("Signout", mock.Anything, mock.AnythingOfType("*auth.Claims"), "refresh").Return(nil)

	rec := s.do(http.MethodPost, "/api/v1/signin", `{"username":"alice123","password":"Passw0rd!"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "access", body["token"])
	assert.Equal(t, "refresh", body["refresh_token"])

	rec = s.do(http.MethodPost, "/api/v1/signin", `{"username":"alice123","password":"wrong"}`, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/signout", `{"refresh_token":"refresh"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/signout", `{"refresh_token":"refresh"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	s.auth.AssertExpectations(t)
}

func TestAuthHandler_Refresh(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("Refresh", mock.Anything, "good").Return("new-access", nil)
	s.auth.On("Refresh", mock.Anything, "bad").Return("", errors.ErrInvalidToken)

	rec := s.do(http.MethodPost, "/api/v1/token/refresh", `{"refresh_token":"good"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new-access", decode(t, rec)["token"])

	rec = s.do(http.MethodPost, "/api/v1/token/refresh", `{"refresh_token":"bad"}`, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/token/refresh", `{}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContentHandler_RequiresAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/content", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.content.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentHandler_CreateJSON(t *testing.T) {
	s := newTestServer(t)
	want := service.Submission{Title: "t", Type: "other"}
	s.content.On("Create", mock.Anything, s.userID, want).Return(nil,
		errors.NewValidationError(errors.ErrMissingRequiredField, "link OR description is required", "link", "description"))

	rec := s.do(http.MethodPost, "/api/v1/content", `{"title":"t","type":"other"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "link OR description is required", body["message"])
	assert.Equal(t, "MISSING_REQUIRED_FIELD", body["code"])
	assert.Equal(t, []interface{}{"link", "description"}, body["fields"])
	s.content.AssertExpectations(t)
}

func TestContentHandler_CreateMultipart(t *testing.T) {
	s := newTestServer(t)
	pdf := []byte("%PDF-1.4\n%%EOF\n")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "paper"))
	require.NoError(t, w.WriteField("type", "documents"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="paper.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(pdf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	created := &model.Content{ID: uuid.New(), Title: "paper", Type: model.ContentTypeDocuments, FileName: "paper.pdf", FilePath: "/secret/path.pdf", Tags: []string{}}
	s.content.On("Create", mock.Anything, s.userID, mock.MatchedBy(func(sub service.Submission) bool {
		if sub.File == nil {
			return false
		}
		data, _ := io.ReadAll(sub.File.Content)
		_, _ = sub.File.Content.Seek(0, io.SeekStart)
		return sub.Title == "paper" && sub.Type == "documents" &&
			sub.File.Name == "paper.pdf" && sub.File.ContentType == "application/pdf" &&
			sub.File.Size == int64(len(pdf)) && bytes.Equal(data, pdf)
	})).Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/secret/path.pdf")
	s.content.AssertExpectations(t)
}

func TestContentHandler_List(t *testing.T) {
	s := newTestServer(t)
	s.content.On("List", mock.Anything, s.userID, "twitter").Return([]model.Content{{Title: "tweet", Type: model.ContentTypeTwitter, Tags: []string{}}}, nil)
	s.content.On("List", mock.Anything, s.userID, "facebook").Return(nil, errors.NewValidationError(errors.ErrInvalidType, "type must be one of ...", "type"))

	rec := s.do(http.MethodGet, "/api/v1/content?type=twitter", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	content := decode(t, rec)["content"].([]interface{})
	require.Len(t, content, 1)
	assert.Equal(t, []interface{}{}, content[0].(map[string]interface{})["tags"])

	rec = s.do(http.MethodGet, "/api/v1/content?type=facebook", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_TYPE", decode(t, rec)["code"])
}

func TestContentHandler_Delete(t *testing.T) {
	s := newTestServer(t)
	mine := uuid.New()
	theirs := uuid.New()
	s.content.On("Delete", mock.Anything, s.userID, mine).Return(nil)
	s.content.On("Delete", mock.Anything, s.userID, theirs).Return(errors.ErrContentNotFound)

	rec := s.do(http.MethodDelete, "/api/v1/content", `{"contentId":"`+mine.String()+`"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/content", `{"contentId":"`+theirs.String()+`"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/content", `{"contentId":"42"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CONTENT_ID", decode(t, rec)["code"])

	rec = s.do(http.MethodDelete, "/api/v1/content", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []interface{}{"contentId"}, decode(t, rec)["fields"])
	s.content.AssertExpectations(t)
}

func TestContentHandler_Download(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "1700000000000-paper.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	withFile := uuid.New()
	missing := uuid.New()
	s.content.On("Download", mock.Anything, s.userID, withFile).Return(&model.Content{ID: withFile, FileName: "paper.pdf", FilePath: path}, nil)
	s.content.On("Download", mock.Anything, s.userID, missing).Return(nil, errors.ErrFileNotFound)

	rec := s.do(http.MethodGet, "/api/v1/content/"+withFile.String()+"/download", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `attachment; filename="paper.pdf"`)

	rec = s.do(http.MethodGet, "/api/v1/content/"+missing.String()+"/download", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBrainHandler(t *testing.T) {
	s := newTestServer(t)
	s.share.On("Share", mock.Anything, s.userID, true).Return("AbCdEf1234", nil)
	s.share.On("Share", mock.Anything, s.userID, false).Return("", nil)
	s.share.On("Resolve", mock.Anything, "AbCdEf1234").Return(&service.PublicBrain{
		Username: "alice123",
		Content:  []model.Content{{Title: "note", Type: model.ContentTypeOther, Tags: []string{}}},
	}, nil)
	s.share.On("Resolve", mock.Anything, "zzzzzzzzzz").Return(nil, errors.ErrLinkNotFound)

	rec := s.do(http.MethodPost, "/api/v1/brain/share", `{"share":true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AbCdEf1234", decode(t, rec)["hash"])

	rec = s.do(http.MethodPost, "/api/v1/brain/share", `{"share":false}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["hash"])

	rec = s.do(http.MethodPost, "/api/v1/brain/share", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/brain/AbCdEf1234", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "alice123", body["username"])
	assert.Len(t, body["content"], 1)

	rec = s.do(http.MethodGet, "/api/v1/brain/zzzzzzzzzz", "", false)
	assert.Equal(t, http.StatusLengthRequired, rec.Code)
	assert.Equal(t, "input is invalid", decode(t, rec)["message"])
	s.share.AssertExpectations(t)
}

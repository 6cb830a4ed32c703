package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wordvault/config"
	httpmiddleware "wordvault/internal/delivery/http/middleware"
	"wordvault/internal/delivery/http/router/handler"
	"wordvault/internal/delivery/http/validator"
	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/infra/auth"
	mockUsecase "wordvault/internal/mocks/usecase"
	"wordvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo   *echo.Echo
	userUC *mockUsecase.MockUserUsecase
	wordUC *mockUsecase.MockWordUsecase
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "router_test_secret_key_long_enough"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockUsecase.NewMockUserUsecase(t)
	wordUC := mockUsecase.NewMockWordUsecase(t)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(userUC, logger),
		WordHandler:    handler.NewWordHandler(wordUC, logger),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return &testServer{echo: e, userUC: userUC, wordUC: wordUC, cfg: cfg}
}

func (s *testServer) request(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// issueToken signs a token for the given user the same way login does.
func (s *testServer) issueToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(s.cfg)
	require.NoError(t, err)
	token, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	return token
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRegisterRoute_Success(t *testing.T) {
	srv := newTestServer(t)

	srv.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Bob", Login: "bob", Password: "pw"}).
		Return(nil)

	rec := srv.request(http.MethodPost, "/auth/register", `{"name":"Bob","login":"bob","password":"pw"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRegisterRoute_MissingField(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodPost, "/auth/register", `{"name":"Bob","login":"bob"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRegisterRoute_LoginTaken(t *testing.T) {
	srv := newTestServer(t)

	srv.userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(domainerrors.ErrLoginAlreadyUsed.WrapMessage("login already registered"))

	rec := srv.request(http.MethodPost, "/auth/register", `{"name":"Bob","login":"bob","password":"pw"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOGIN_ALREADY_USED")
}

func TestLoginRoute_Success(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()

	srv.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Login: "bob", Password: "pw"}).
		Return(&usecase.LoginOutput{
			Token: "signed-token",
			User:  &entity.User{ID: userID, Name: "bob", Login: "bob"},
		}, nil)

	rec := srv.request(http.MethodPost, "/auth/login", `{"login":"bob","password":"pw"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed-token", rec.Header().Get(handler.HeaderAuthToken))
	assert.Equal(t, handler.HeaderAuthToken, rec.Header().Get(echo.HeaderAccessControlExposeHeaders))
	assert.Contains(t, rec.Body.String(), `"login":"bob"`)
	assert.NotContains(t, rec.Body.String(), "signed-token")
}

func TestLoginRoute_InvalidCredentials(t *testing.T) {
	srv := newTestServer(t)

	srv.userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	rec := srv.request(http.MethodPost, "/auth/login", `{"login":"bob","password":"wrong"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid login or password")
	// The internal cause never leaks to the client.
	assert.NotContains(t, rec.Body.String(), "mismatch")
}

func TestWordRoutes_RequireAuthentication(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "list", method: http.MethodGet, target: "/words"},
		{name: "create", method: http.MethodPost, target: "/words"},
		{name: "edit", method: http.MethodPut, target: "/words"},
		{name: "delete", method: http.MethodDelete, target: "/words?id=" + uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.request(tt.method, tt.target, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
		})
	}
}

func TestWordRoutes_RejectBadTokens(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/words", "", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A token signed with another secret is rejected too.
	otherCfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)
	forged, err := otherSvc.Generate(uuid.New())
	require.NoError(t, err)

	rec = srv.request(http.MethodGet, "/words", "", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWordRoutes_ExpiredToken(t *testing.T) {
	srv := newTestServer(t)

	expiredCfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: -time.Minute}}
	expiredCfg.SecretKey.Access = srv.cfg.SecretKey.Access
	expiredSvc, err := auth.NewJWTService(expiredCfg)
	require.NoError(t, err)
	expired, err := expiredSvc.Generate(uuid.New())
	require.NoError(t, err)

	rec := srv.request(http.MethodGet, "/words", "", expired)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestListWordsRoute(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		List(mock.Anything, userID).
		Return([]*entity.Word{
			{ID: uuid.New(), UserID: userID, Native: "haus", Translate: "house"},
		}, nil)

	rec := srv.request(http.MethodGet, "/words", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"native":"haus"`)
}

func TestListWordsRoute_EmptyVocabulary(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().List(mock.Anything, userID).Return(nil, nil)

	rec := srv.request(http.MethodGet, "/words", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCreateWordRoute(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		Create(mock.Anything, userID, &usecase.CreateWordInput{Native: "Haus", Translate: "house"}).
		Return(&entity.Word{ID: uuid.New(), UserID: userID, Native: "haus", Translate: "house"}, nil)

	rec := srv.request(http.MethodPost, "/words", `{"native":"Haus","translate":"house"}`, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"native":"haus"`)
}

func TestCreateWordRoute_Duplicate(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		Create(mock.Anything, userID, mock.AnythingOfType("*usecase.CreateWordInput")).
		Return(nil, domainerrors.ErrWordAlreadyExists.WrapMessage("native term already registered"))

	rec := srv.request(http.MethodPost, "/words", `{"native":"haus","translate":"house"}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "WORD_ALREADY_EXISTS")
}

func TestEditWordRoute(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	wordID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		Edit(mock.Anything, userID, &usecase.EditWordInput{ID: wordID, Native: "haus", Translate: "home"}).
		Return(&entity.Word{ID: wordID, UserID: userID, Native: "haus", Translate: "home"}, nil)

	body := `{"id":"` + wordID.String() + `","native":"haus","translate":"home"}`
	rec := srv.request(http.MethodPut, "/words", body, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"translate":"home"`)
}

func TestEditWordRoute_NotFound(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		Edit(mock.Anything, userID, mock.AnythingOfType("*usecase.EditWordInput")).
		Return(nil, domainerrors.ErrWordNotFound.WrapMessage("word does not exist or is not owned by this user"))

	body := `{"id":"` + uuid.NewString() + `","native":"haus","translate":"home"}`
	rec := srv.request(http.MethodPut, "/words", body, token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "WORD_NOT_FOUND")
}

func TestDeleteWordRoute(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	wordID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().Delete(mock.Anything, userID, wordID).Return(nil)

	rec := srv.request(http.MethodDelete, "/words?id="+wordID.String(), "", token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteWordRoute_InvalidID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.issueToken(t, uuid.New())

	rec := srv.request(http.MethodDelete, "/words?id=not-a-uuid", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestDeleteWordRoute_NotFound(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	wordID := uuid.New()
	token := srv.issueToken(t, userID)

	srv.wordUC.EXPECT().
		Delete(mock.Anything, userID, wordID).
		Return(domainerrors.ErrWordNotFound.WrapMessage("word does not exist or is not owned by this user"))

	rec := srv.request(http.MethodDelete, "/words?id="+wordID.String(), "", token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "WORD_NOT_FOUND")
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"athlete-service/internal/domain/apikey"
	"athlete-service/internal/domain/user"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPIKeyRepo struct {
	keys     map[string]*apikey.APIKey
	failWith error
}

func newFakeAPIKeyRepo() *fakeAPIKeyRepo {
	return &fakeAPIKeyRepo{keys: make(map[string]*apikey.APIKey)}
}

func (f *fakeAPIKeyRepo) GetActiveByKey(ctx context.Context, key string) (*apikey.APIKey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if k, ok := f.keys[key]; ok && k.Active {
		return k, nil
	}
	return nil, apperrors.NotFound("api key not found")
}

func (f *fakeAPIKeyRepo) Create(ctx context.Context, input apikey.CreateAPIKeyInput) (*apikey.APIKey, error) {
	k := &apikey.APIKey{ID: int64(len(f.keys) + 1), Key: input.Key, UserID: input.UserID, Active: input.Active}
	f.keys[input.Key] = k
	return k, nil
}

func (f *fakeAPIKeyRepo) Deactivate(ctx context.Context, id int64) error {
	for _, k := range f.keys {
		if k.ID == id {
			k.Active = false
			return nil
		}
	}
	return apperrors.NotFound("api key not found")
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newGateTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func bodyMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func newTestMiddleware(keys *fakeAPIKeyRepo) (*Middleware, *JWTService) {
	jwtService := NewJWTService(testSecret, time.Hour)
	if keys == nil {
		keys = newFakeAPIKeyRepo()
	}
	return NewMiddleware(jwtService, keys), jwtService
}

func issueToken(t *testing.T, jwtService *JWTService, id int64, role user.Role) string {
	t.Helper()
	token, err := jwtService.Generate(&user.User{ID: id, Username: "u", Email: "u@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestRequireToken_MissingHeader(t *testing.T) {
	mw, _ := newTestMiddleware(nil)
	c, rec := newGateTestContext(t, "")

	require.NoError(t, mw.RequireToken()(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgMissingAuthorization, bodyMessage(t, rec))
}

func TestRequireToken_MalformedHeader(t *testing.T) {
	mw, jwtService := newTestMiddleware(nil)
	token := issueToken(t, jwtService, 1, user.RoleUser)

	for _, header := range []string{"Basic abc", token, "Bearer", "Bearer a b"} {
		c, rec := newGateTestContext(t, header)
		require.NoError(t, mw.RequireToken()(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireToken_CaseInsensitiveScheme(t *testing.T) {
	mw, jwtService := newTestMiddleware(nil)
	token := issueToken(t, jwtService, 1, user.RoleUser)

	c, rec := newGateTestContext(t, "bearer "+token)
	require.NoError(t, mw.RequireToken()(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireToken_ExpiredToken(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	jwtService := NewJWTService(testSecret, time.Nanosecond)
	mw := NewMiddleware(jwtService, keys)

	token := issueToken(t, jwtService, 1, user.RoleUser)
	time.Sleep(10 * time.Millisecond)

	c, rec := newGateTestContext(t, "Bearer "+token)
	require.NoError(t, mw.RequireToken()(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, msgTokenExpired, bodyMessage(t, rec))
}

func TestRequireToken_InvalidToken(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := newGateTestContext(t, "Bearer not.a.token")
	require.NoError(t, mw.RequireToken()(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, msgTokenInvalid, bodyMessage(t, rec))
}

func TestRequireToken_BindsPrincipal(t *testing.T) {
	mw, jwtService := newTestMiddleware(nil)
	token := issueToken(t, jwtService, 42, user.RoleAdmin)

	c, rec := newGateTestContext(t, "Bearer "+token)
	handler := func(c echo.Context) error {
		p, err := GetTokenPrincipal(c)
		require.NoError(t, err)
		assert.Equal(t, int64(42), p.UserID)
		assert.True(t, p.IsAdmin())
		return c.String(http.StatusOK, "ok")
	}

	require.NoError(t, mw.RequireToken()(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := newGateTestContext(t, "")
	c.Set(ContextKeyPrincipal, TokenPrincipal{UserID: 1, Role: user.RoleAdmin})
	require.NoError(t, mw.RequireRole(user.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newGateTestContext(t, "")
	c.Set(ContextKeyPrincipal, TokenPrincipal{UserID: 1, Role: user.RoleUser})
	require.NoError(t, mw.RequireRole(user.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := newGateTestContext(t, "")
	require.NoError(t, mw.RequireRole(user.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func ownershipContext(t *testing.T, p TokenPrincipal, param string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newGateTestContext(t, "")
	c.SetParamNames("id")
	c.SetParamValues(param)
	c.Set(ContextKeyPrincipal, p)
	return c, rec
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	mw, _ := newTestMiddleware(nil)
	gate := mw.RequireOwnerOrAdmin("id")

	// Owner reaches the handler.
	c, rec := ownershipContext(t, TokenPrincipal{UserID: 5, Role: user.RoleUser}, "5")
	require.NoError(t, gate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different user is denied.
	c, rec = ownershipContext(t, TokenPrincipal{UserID: 5, Role: user.RoleUser}, "6")
	require.NoError(t, gate(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, msgOwnershipDenied, bodyMessage(t, rec))

	// Admins bypass the ownership check.
	c, rec = ownershipContext(t, TokenPrincipal{UserID: 99, Role: user.RoleAdmin}, "6")
	require.NoError(t, gate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Non-numeric id.
	c, rec = ownershipContext(t, TokenPrincipal{UserID: 5, Role: user.RoleUser}, "abc")
	require.NoError(t, gate(okHandler)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequirePartition(t *testing.T) {
	mw, _ := newTestMiddleware(nil)
	gate := mw.RequirePartition(ParityPartition)

	tests := []struct {
		userID     int64
		role       user.Role
		resourceID string
		wantCode   int
	}{
		{1, user.RoleUser, "7", http.StatusOK},
		{1, user.RoleUser, "8", http.StatusForbidden},
		{2, user.RoleUser, "8", http.StatusOK},
		{2, user.RoleUser, "7", http.StatusForbidden},
		{3, user.RoleUser, "7", http.StatusForbidden},
		{3, user.RoleUser, "8", http.StatusForbidden},
		{9, user.RoleAdmin, "7", http.StatusOK},
		{9, user.RoleAdmin, "8", http.StatusOK},
	}

	for _, tt := range tests {
		c, rec := ownershipContext(t, TokenPrincipal{UserID: tt.userID, Role: tt.role}, tt.resourceID)
		require.NoError(t, gate(okHandler)(c))
		assert.Equal(t, tt.wantCode, rec.Code, "user %d resource %s", tt.userID, tt.resourceID)
	}
}

func TestRequirePartition_InvalidID(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := ownershipContext(t, TokenPrincipal{UserID: 1, Role: user.RoleUser}, "abc")
	require.NoError(t, mw.RequirePartition(ParityPartition)(okHandler)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func apiKeyContext(header, query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	target := "/"
	if query != "" {
		target = "/?api_key=" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("x-api-key", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAPIKey_Missing(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := apiKeyContext("", "")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgMissingAPIKey, bodyMessage(t, rec))
}

func TestRequireAPIKey_Header(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	_, err := keys.Create(context.Background(), apikey.CreateAPIKeyInput{Key: "valid-key", UserID: 7, Active: true})
	require.NoError(t, err)
	mw, _ := newTestMiddleware(keys)

	c, rec := apiKeyContext("valid-key", "")
	handler := func(c echo.Context) error {
		p, err := GetAPIKeyPrincipal(c)
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.UserID)
		return c.String(http.StatusOK, "ok")
	}

	require.NoError(t, mw.RequireAPIKey()(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAPIKey_QueryFallback(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	_, err := keys.Create(context.Background(), apikey.CreateAPIKeyInput{Key: "valid-key", UserID: 7, Active: true})
	require.NoError(t, err)
	mw, _ := newTestMiddleware(keys)

	c, rec := apiKeyContext("", "valid-key")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAPIKey_HeaderWinsOverQuery(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	_, err := keys.Create(context.Background(), apikey.CreateAPIKeyInput{Key: "valid-key", UserID: 7, Active: true})
	require.NoError(t, err)
	mw, _ := newTestMiddleware(keys)

	c, rec := apiKeyContext("unknown-key", "valid-key")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAPIKey_Unknown(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	c, rec := apiKeyContext("unknown-key", "")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, msgInvalidAPIKey, bodyMessage(t, rec))
}

func TestRequireAPIKey_Inactive(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	created, err := keys.Create(context.Background(), apikey.CreateAPIKeyInput{Key: "revoked-key", UserID: 7, Active: true})
	require.NoError(t, err)
	require.NoError(t, keys.Deactivate(context.Background(), created.ID))
	mw, _ := newTestMiddleware(keys)

	c, rec := apiKeyContext("revoked-key", "")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAPIKey_StoreOutage(t *testing.T) {
	keys := newFakeAPIKeyRepo()
	keys.failWith = errors.New("connection refused")
	mw, _ := newTestMiddleware(keys)

	c, rec := apiKeyContext("valid-key", "")
	require.NoError(t, mw.RequireAPIKey()(okHandler)(c))
	// An outage is a 500, never an authorization denial.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rater/config"
	"rater/internal/domain/entity"
	"rater/internal/infra/auth"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, func(userID uuid.UUID, role entity.Role) (access string, refresh string)) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	issue := func(userID uuid.UUID, role entity.Role) (string, string) {
		access, refresh, genErr := tokenSvc.GenerateTokens(userID, role)
		require.NoError(t, genErr)

		return access, refresh
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func invokeWithAuth(m *AuthMiddleware, header string) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := m.Authenticate(next)(c)

	return c, rec, err
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	userID := uuid.New()
	access, _ := issue(userID, entity.RoleOwner)

	c, rec, err := invokeWithAuth(m, "Bearer "+access)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	caller, ok := CallerFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, caller.UserID)
	assert.Equal(t, entity.RoleOwner, caller.Role)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	_, rec, err := invokeWithAuth(m, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	access, _ := issue(uuid.New(), entity.RoleUser)

	_, rec, err := invokeWithAuth(m, "Token "+access)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	_, refresh := issue(uuid.New(), entity.RoleUser)

	_, rec, err := invokeWithAuth(m, "Bearer "+refresh)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	_, rec, err := invokeWithAuth(m, "Bearer not.a.jwt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthenticate_AnonymousContinues(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.OptionalAuthenticate(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := CallerFromContext(c)
	assert.False(t, ok)
}

func TestOptionalAuthenticate_ValidTokenAttachesCaller(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	userID := uuid.New()
	access, _ := issue(userID, entity.RoleUser)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.OptionalAuthenticate(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	require.NoError(t, err)

	caller, ok := CallerFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, caller.UserID)
}

func TestRequireRole(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	tests := []struct {
		name       string
		callerRole entity.Role
		required   entity.Role
		wantStatus int
	}{
		{"matching role passes", entity.RoleAdmin, entity.RoleAdmin, http.StatusOK},
		{"mismatched role forbidden", entity.RoleUser, entity.RoleAdmin, http.StatusForbidden},
		{"owner is not admin", entity.RoleOwner, entity.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(keyCaller, usecase.Caller{UserID: uuid.New(), Role: tt.callerRole})

			handler := m.RequireRole(tt.required)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRole_MissingCaller(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

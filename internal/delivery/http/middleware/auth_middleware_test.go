package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"referral/internal/domain/constants"
	domainerrors "referral/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleTestContext(t *testing.T) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/rewards/reconcile", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthMiddleware_RequireRole_Allows(t *testing.T) {
	m := NewAuthMiddleware(nil)
	c := newRoleTestContext(t)
	c.Set("roles", []string{constants.RoleAdmin})

	called := false
	handler := m.RequireRole(constants.RoleAdmin)(func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole_MissingRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	c := newRoleTestContext(t)
	c.Set("roles", []string{"user"})

	handler := m.RequireRole(constants.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler must not run without the required role")

		return nil
	})

	err := handler(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestAuthMiddleware_RequireRole_NoRolesOnContext(t *testing.T) {
	m := NewAuthMiddleware(nil)
	c := newRoleTestContext(t)

	handler := m.RequireRole(constants.RoleAdmin)(func(c echo.Context) error {
		return nil
	})

	err := handler(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

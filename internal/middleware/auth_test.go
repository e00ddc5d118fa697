package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/ping", RequireOwner(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestOpenModeWhenPasscodeUnset(t *testing.T) {
	t.Setenv("OWNER_PASSCODE", "")
	InitOwnerAuth()

	assert.False(t, Enabled())

	_, err := Login("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	newGuardedRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAndBearerToken(t *testing.T) {
	t.Setenv("OWNER_PASSCODE", "1234")
	InitOwnerAuth()
	t.Cleanup(func() { passcodeHash = nil })

	require.True(t, Enabled())

	_, err := Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidPasscode)

	token, err := Login("1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	router := newGuardedRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQueryTokenGuard(t *testing.T) {
	t.Setenv("OWNER_PASSCODE", "1234")
	InitOwnerAuth()
	t.Cleanup(func() { passcodeHash = nil })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", RequireOwnerQueryToken(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := Login("1234")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

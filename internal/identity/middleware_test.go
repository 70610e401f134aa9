package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/exchange-service/internal/config"
)

func newRouter(v *Validator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(v.Middleware())
	r.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, SessionFrom(c).MemberID)
	})
	r.GET("/member", RequireMember(), func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c.Request.Context()).MemberID)
	})
	return r
}

func TestMiddlewareAcceptsBearerAndQueryToken(t *testing.T) {
	v := hmacValidator(t)
	r := newRouter(v)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "member-1", "iss": "https://members.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "member-1", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/member?access_token="+token, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "member-1", w.Body.String())
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	r := newRouter(hmacValidator(t))

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireMemberRejectsAnonymous(t *testing.T) {
	r := newRouter(hmacValidator(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/member", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMiddlewareDevHeader(t *testing.T) {
	v, err := NewValidator(context.Background(), config.AuthConfig{}, quietLogger())
	require.NoError(t, err)
	r := newRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set(MemberHeader, "bob")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", w.Body.String())
}

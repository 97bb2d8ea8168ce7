package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"IT_Hub/internal/model"
	"IT_Hub/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminEngine(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/admin", AdminOnly(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserIDKey)})
	})
	return r
}

func TestAdminOnly(t *testing.T) {
	secret := []byte("s3cret")
	r := newAdminEngine(secret)

	admin, err := pkg.GenerateAccess(secret, "a-1", model.RoleAdmin)
	require.NoError(t, err)
	member, err := pkg.GenerateAccess(secret, "m-1", model.RoleMember)
	require.NoError(t, err)
	forged, err := pkg.GenerateAccess([]byte("other"), "a-1", model.RoleAdmin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"bad scheme", "Token " + admin, http.StatusUnauthorized},
		{"wrong key", "Bearer " + forged, http.StatusUnauthorized},
		{"member", "Bearer " + member, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	r := newAdminEngine([]byte("x"))
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

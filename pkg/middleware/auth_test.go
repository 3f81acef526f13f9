package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinesocial/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

// echoRouter answers with the claims AuthMiddleware stored, behind the given
// guards.
func echoRouter(guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(guards...)
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	return r
}

func serve(r http.Handler, authorization string) (int, map[string]string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewService(testSecret)
	token, err := svc.GenerateToken("42", "moderator")
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret").GenerateToken("42", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
		body   map[string]string
	}{
		{"missing header", "", http.StatusUnauthorized, map[string]string{"error": "Authorization header required"}},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header format"}},
		{"no credentials", "Bearer", http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header format"}},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"}},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"}},
		{"valid", "Bearer " + token, http.StatusOK, map[string]string{"user_id": "42", "role": "moderator"}},
	}

	r := echoRouter(AuthMiddleware(svc))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(r, tt.header)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestRequireRole(t *testing.T) {
	svc := jwt.NewService(testSecret)
	r := echoRouter(AuthMiddleware(svc), RequireRole("admin", "moderator"))

	tests := []struct {
		role string
		code int
	}{
		{"admin", http.StatusOK},
		{"moderator", http.StatusOK},
		{"user", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run("role="+tt.role, func(t *testing.T) {
			token, err := svc.GenerateToken("7", tt.role)
			require.NoError(t, err)

			code, body := serve(r, "Bearer "+token)
			assert.Equal(t, tt.code, code)
			if tt.code == http.StatusForbidden {
				assert.Equal(t, "Insufficient permissions", body["error"])
			} else {
				assert.Equal(t, tt.role, body["role"])
			}
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		code, _ := serve(r, "")
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

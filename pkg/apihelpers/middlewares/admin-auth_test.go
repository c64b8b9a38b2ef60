package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/parthoooo/story-teller/pkg/jwt-handling"
)

const testSignKey = "test-sign-key"

func protectedTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AdminAuthMiddleware(testSignKey, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAdminAuthMiddlewareRejectsBadTokens(t *testing.T) {
	router := protectedTestRouter()

	expiredToken, err := jwthandling.GenerateNewAdminUserToken(-time.Minute, "someid", "admin", "admin", testSignKey)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	wrongKeyToken, err := jwthandling.GenerateNewAdminUserToken(time.Hour, "someid", "admin", "admin", "other-key")
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"empty bearer", "Bearer "},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signature", "Bearer " + wrongKeyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			// all failure modes answer with the same message
			if !strings.Contains(rec.Body.String(), "invalid token") {
				t.Errorf("expected uniform error message, got: %s", rec.Body.String())
			}
		})
	}
}

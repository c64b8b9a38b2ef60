package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	adminUserDB "github.com/parthoooo/story-teller/pkg/db/admin-users"
	jwthandling "github.com/parthoooo/story-teller/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAuthorization = "Authorization"

	// context keys set by the auth middleware
	CtxKeyValidatedToken = "validatedToken"
	CtxKeyAdminUser      = "adminUser"
)

// AdminAuthMiddleware validates the bearer token, loads the admin record
// (without the password hash) and attaches both to the request context.
// Every failure mode answers with the same 401 so callers cannot probe
// which check rejected them.
func AdminAuthMiddleware(tokenSignKey string, adminDB *adminUserDB.AdminUserDBService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found", slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidateAdminUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed", slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		admin, err := adminDB.GetAdminUserByID(parsedToken.ID)
		if err != nil {
			slog.Warn("admin user not found for token", slog.String("adminID", parsedToken.ID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// revocation check on every request, the token alone is not trusted
		if !admin.IsActive {
			slog.Warn("deactivated admin attempted access", slog.String("username", admin.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(CtxKeyValidatedToken, parsedToken)
		c.Set(CtxKeyAdminUser, admin)
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("no token found in Authorization header")
		}
	} else {
		return token, errors.New("no Authorization header found")
	}
	return token, nil
}

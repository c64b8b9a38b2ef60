package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/parthoooo/story-teller/pkg/apihelpers/middlewares"
	"github.com/parthoooo/story-teller/pkg/admin-user/pwhash"
	adminUserDB "github.com/parthoooo/story-teller/pkg/db/admin-users"
	jwthandling "github.com/parthoooo/story-teller/pkg/jwt-handling"
)

const minPasswordLength = 6

func (h *HttpEndpoints) AddAdminUserAPI(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/setup", mw.RequirePayload(), h.adminSetup)
		adminGroup.POST("/login", mw.RequirePayload(), h.adminLogin)
	}
}

type AdminSetupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminSetup creates the first (and only) admin account. Once any admin
// exists the endpoint refuses further use.
func (h *HttpEndpoints) adminSetup(c *gin.Context) {
	var req AdminSetupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters long"})
		return
	}

	count, err := h.adminUserDBConn.CountAdminUsers()
	if err != nil {
		slog.Error("failed to count admin users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if count > 0 {
		slog.Warn("admin setup attempted while an admin already exists")
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin user already exists"})
		return
	}

	hashedPassword, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	admin, err := h.adminUserDBConn.CreateAdminUser(&adminUserDB.AdminUser{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     adminUserDB.ADMIN_USER_ROLE_ADMIN,
		IsActive: true,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin user already exists"})
			return
		}
		slog.Error("failed to create admin user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("admin user created", slog.String("username", admin.Username))
	c.JSON(http.StatusCreated, gin.H{
		"message": "admin user created successfully",
		"admin": gin.H{
			"id":       admin.ID.Hex(),
			"username": admin.Username,
			"email":    admin.Email,
			"role":     admin.Role,
		},
	})
}

type AdminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) adminLogin(c *gin.Context) {
	var req AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	admin, err := h.adminUserDBConn.GetAdminUserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		slog.Warn("login attempt with unknown username", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if !admin.IsActive {
		slog.Warn("login attempt for deactivated admin", slog.String("username", admin.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(admin.Password, req.Password)
	if err != nil || !match {
		slog.Warn("login attempt with wrong password", slog.String("username", admin.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := jwthandling.GenerateNewAdminUserToken(
		h.tokenExpiresIn,
		admin.ID.Hex(),
		admin.Username,
		admin.Role,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.adminUserDBConn.UpdateLastLoginAt(admin.ID.Hex()); err != nil {
		slog.Error("failed to update last login timestamp", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID.Hex(),
			"username": admin.Username,
			"email":    admin.Email,
			"role":     admin.Role,
		},
	})
}

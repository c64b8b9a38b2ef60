package main

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/parthoooo/story-teller/pkg/apihelpers"
	"github.com/parthoooo/story-teller/services/story-api/apihandlers"
)

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "X-Session-Id"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)

	// stored uploads are publicly served, the approved feed references
	// them by filename
	router.Static("/uploads", fileStore.Dir())

	apiRoot := router.Group("/api")

	apiHandlers := apihandlers.NewHTTPHandler(
		conf.AdminUserConfig.JWTConfig.SignKey,
		adminUserJWTExpiresIn,
		submissionDBService,
		adminUserDBService,
		fileStore,
	)
	apiHandlers.AddSubmissionIntakeAPI(apiRoot)
	apiHandlers.AddApprovedFeedAPI(apiRoot)
	apiHandlers.AddAdminUserAPI(apiRoot)
	apiHandlers.AddSubmissionManagementAPI(apiRoot)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "story-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Story API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Story API", slog.String("error", err.Error()))
		return
	}
}

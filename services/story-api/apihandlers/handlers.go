package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	adminUserDB "github.com/parthoooo/story-teller/pkg/db/admin-users"
	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
	"github.com/parthoooo/story-teller/pkg/filestore"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	submissionDBConn *submissionDB.SubmissionDBService
	adminUserDBConn  *adminUserDB.AdminUserDBService
	tokenSignKey     string
	tokenExpiresIn   time.Duration
	fileStore        *filestore.FileStore
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	submissionDBConn *submissionDB.SubmissionDBService,
	adminUserDBConn *adminUserDB.AdminUserDBService,
	fileStore *filestore.FileStore,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:     tokenSignKey,
		tokenExpiresIn:   tokenExpiresIn,
		submissionDBConn: submissionDBConn,
		adminUserDBConn:  adminUserDBConn,
		fileStore:        fileStore,
	}
}

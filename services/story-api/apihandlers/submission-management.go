package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/parthoooo/story-teller/pkg/apihelpers/middlewares"
	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
	emailsending "github.com/parthoooo/story-teller/pkg/messaging/email-sending"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (h *HttpEndpoints) AddSubmissionManagementAPI(rg *gin.RouterGroup) {
	submissionsGroup := rg.Group("/admin/submissions")
	submissionsGroup.Use(mw.AdminAuthMiddleware(h.tokenSignKey, h.adminUserDBConn))
	{
		submissionsGroup.GET("", h.getSubmissions)
		submissionsGroup.PUT("/:id", mw.RequirePayload(), h.updateSubmissionReview)
		submissionsGroup.DELETE("/:id", h.deleteSubmission)
	}
}

func parsePageQuery(c *gin.Context) (page int64, limit int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func (h *HttpEndpoints) getSubmissions(c *gin.Context) {
	page, limit := parsePageQuery(c)

	filter := submissionDB.SubmissionListFilter{
		Status: c.DefaultQuery("status", "all"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	submissions, totalCount, err := h.submissionDBConn.GetSubmissions(filter)
	if err != nil {
		slog.Error("failed to fetch submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch submissions"})
		return
	}

	statusStats, err := h.submissionDBConn.GetStatusCounts()
	if err != nil {
		slog.Error("failed to aggregate status counts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"pagination":  paginationInfos(page, limit, totalCount),
		"statusStats": statusStats,
	})
}

type UpdateSubmissionReq struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

func (h *HttpEndpoints) updateSubmissionReview(c *gin.Context) {
	submissionID := c.Param("id")

	var req UpdateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !submissionDB.IsValidSubmissionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		return
	}

	admin, err := getAdminFromContext(c)
	if err != nil {
		slog.Error("failed to read admin user from context", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	updated, err := h.submissionDBConn.UpdateSubmissionReview(
		submissionID,
		req.Status,
		req.AdminNotes,
		admin.Username,
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		slog.Error("failed to update submission", slog.String("submissionID", submissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update submission"})
		return
	}

	// status emails are best effort, review results never depend on them
	if req.Status == submissionDB.SUBMISSION_STATUS_APPROVED || req.Status == submissionDB.SUBMISSION_STATUS_REJECTED {
		go h.sendStatusUpdateEmail(updated)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "submission updated successfully",
		"submission": updated,
	})
}

func (h *HttpEndpoints) sendStatusUpdateEmail(submission *submissionDB.Submission) {
	err := emailsending.SendStatusUpdateEmail(
		submission.PersonalInfo.Email,
		submission.Status,
		map[string]string{
			"firstName":    submission.PersonalInfo.FirstName,
			"lastName":     submission.PersonalInfo.LastName,
			"submissionId": submission.ID.Hex(),
		},
	)
	if err != nil {
		slog.Error("failed to send status update email",
			slog.String("submissionID", submission.ID.Hex()),
			slog.String("error", err.Error()))
	}
}

func (h *HttpEndpoints) deleteSubmission(c *gin.Context) {
	submissionID := c.Param("id")

	err := h.submissionDBConn.DeleteSubmission(submissionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		slog.Error("failed to delete submission", slog.String("submissionID", submissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete submission"})
		return
	}

	slog.Info("submission deleted", slog.String("submissionID", submissionID))
	c.JSON(http.StatusOK, gin.H{"message": "submission deleted successfully"})
}

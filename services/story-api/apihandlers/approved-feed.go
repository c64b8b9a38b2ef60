package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

func (h *HttpEndpoints) AddApprovedFeedAPI(rg *gin.RouterGroup) {
	rg.GET("/approved-submissions", h.getApprovedSubmissions)
}

// ApprovedSubmission is the public projection of an approved story.
// Contact details (email, zip code) never leave the server.
type ApprovedSubmission struct {
	ID            string                     `json:"id"`
	FirstName     string                     `json:"firstName"`
	LastName      string                     `json:"lastName"`
	TextStory     string                     `json:"textStory,omitempty"`
	AudioURL      string                     `json:"audioUrl"`
	Duration      float64                    `json:"duration"`
	AudioSize     int64                      `json:"audioSize"`
	ProcResponses submissionDB.ProcResponses `json:"procResponses"`
	SubmittedAt   string                     `json:"submittedAt"`
}

func approvedFeedItem(s submissionDB.Submission) ApprovedSubmission {
	return ApprovedSubmission{
		ID:            s.ID.Hex(),
		FirstName:     s.PersonalInfo.FirstName,
		LastName:      s.PersonalInfo.LastName,
		TextStory:     s.Content.TextStory,
		AudioURL:      "/uploads/" + s.Content.AudioRecording.Filename,
		Duration:      s.Content.AudioRecording.Duration,
		AudioSize:     s.Content.AudioRecording.Size,
		ProcResponses: s.ProcResponses,
		SubmittedAt:   s.SubmittedAt.Format(time.RFC3339),
	}
}

func (h *HttpEndpoints) getApprovedSubmissions(c *gin.Context) {
	page, limit := parsePageQuery(c)

	submissions, totalCount, err := h.submissionDBConn.GetApprovedSubmissionsWithAudio(page, limit)
	if err != nil {
		slog.Error("failed to fetch approved submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch submissions"})
		return
	}

	feed := make([]ApprovedSubmission, len(submissions))
	for i, s := range submissions {
		feed[i] = approvedFeedItem(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": feed,
		"pagination":  paginationInfos(page, limit, totalCount),
	})
}

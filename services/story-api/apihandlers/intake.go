package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
	emailsending "github.com/parthoooo/story-teller/pkg/messaging/email-sending"
	"github.com/parthoooo/story-teller/pkg/validation"
)

const (
	uploadedFilesField = "uploadedFiles"

	// headroom over the documented total upload ceiling for the text fields
	maxRequestBodySize = validation.MaxTotalSize + 10*1024*1024
)

func (h *HttpEndpoints) AddSubmissionIntakeAPI(rg *gin.RouterGroup) {
	rg.POST("/submit-form", h.submitForm)
}

// audioPayload is the JSON-encoded recorder output sent as a form field.
type audioPayload struct {
	BlobData string  `json:"blobData"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
}

func parseAudioPayload(raw string) *audioPayload {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var payload audioPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Warn("could not parse audio recording payload", slog.String("error", err.Error()))
		return nil
	}
	if payload.BlobData == "" {
		return nil
	}
	if payload.Format == "" {
		payload.Format = "webm"
	}
	return &payload
}

// normalizeFormFields collapses the multipart value lists to scalars,
// keeping the first value of each field.
func normalizeFormFields(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields
}

func parseBoolField(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

func (h *HttpEndpoints) submitForm(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)

	form, err := c.MultipartForm()
	if err != nil {
		slog.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse form data"})
		return
	}

	fields := normalizeFormFields(form.Value)
	fileHeaders := form.File[uploadedFilesField]

	audio := parseAudioPayload(fields["audioRecording"])

	firstName := validation.SanitizeInput(fields["firstName"])
	lastName := validation.SanitizeInput(fields["lastName"])
	email := strings.ToLower(strings.TrimSpace(fields["email"]))
	zipCode := strings.TrimSpace(fields["zipCode"])
	textStory := strings.TrimSpace(fields["textStory"])
	consentAgreed := parseBoolField(fields["consentAgreed"])

	formResult := validation.ValidateForm(validation.FormData{
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		ZipCode:           zipCode,
		TextStory:         textStory,
		HasAudioRecording: audio != nil,
		UploadedFileCount: len(fileHeaders),
		ConsentAgreed:     consentAgreed,
	})
	if !formResult.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"errors": formResult.Errors,
		})
		return
	}

	fileInfos := make([]validation.FileInfo, len(fileHeaders))
	for i, fh := range fileHeaders {
		fileInfos[i] = validation.FileInfo{
			Name:     fh.Filename,
			Mimetype: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
		}
	}
	fileResult := validation.ValidateFileUpload(fileInfos)
	if !fileResult.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"errors": gin.H{uploadedFilesField: strings.Join(fileResult.Errors, "; ")},
		})
		return
	}

	uploadedFiles := make([]submissionDB.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		storedName, err := h.fileStore.SaveMultipartFile(fh)
		if err != nil {
			slog.Error("failed to store uploaded file", slog.String("filename", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded files"})
			return
		}
		uploadedFiles = append(uploadedFiles, submissionDB.UploadedFile{
			Filename:     storedName,
			OriginalName: fh.Filename,
			Mimetype:     fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			UploadedAt:   time.Now(),
		})
	}

	// audio decode failures do not fail the submission, the story is
	// persisted without the recording
	var audioRecording submissionDB.AudioRecording
	if audio != nil {
		storedName, size, err := h.fileStore.SaveAudioRecording(audio.BlobData, audio.Format)
		if err != nil {
			slog.Error("failed to store audio recording", slog.String("error", err.Error()))
		} else {
			audioRecording = submissionDB.AudioRecording{
				Filename:     storedName,
				Filepath:     h.fileStore.Path(storedName),
				Duration:     audio.Duration,
				Format:       audio.Format,
				RecordedAt:   time.Now(),
				HasRecording: true,
				Size:         size,
			}
		}
	}

	now := time.Now()
	submission := &submissionDB.Submission{
		SubmittedAt: now,
		PersonalInfo: submissionDB.PersonalInfo{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			ZipCode:   zipCode,
		},
		Content: submissionDB.Content{
			TextStory:      textStory,
			AudioRecording: audioRecording,
			UploadedFiles:  uploadedFiles,
		},
		ProcResponses: submissionDB.ProcResponses{
			Question1: validation.SanitizeInput(fields["procQuestion1"]),
			Question2: validation.SanitizeInput(fields["procQuestion2"]),
		},
		Consent: submissionDB.Consent{
			Agreed:              consentAgreed,
			AgreedAt:            now,
			ContinuedEngagement: parseBoolField(fields["continuedEngagement"]),
		},
		Tracking: submissionDB.Tracking{
			UserAgent: c.Request.UserAgent(),
			IPAddress: clientIP(c),
			SessionID: sessionID(c, fields),
		},
		Status: submissionDB.SUBMISSION_STATUS_PENDING,
	}

	saved, err := h.submissionDBConn.CreateSubmission(submission)
	if err != nil {
		slog.Error("failed to save submission", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	go sendConfirmationEmail(saved)

	slog.Info("submission received",
		slog.String("submissionID", saved.ID.Hex()),
		slog.Int("uploadedFiles", len(uploadedFiles)),
		slog.Bool("hasAudio", audioRecording.HasRecording))

	c.JSON(http.StatusOK, gin.H{
		"message":      "submission received successfully",
		"submissionId": saved.ID.Hex(),
		"timestamp":    saved.SubmittedAt.Format(time.RFC3339),
	})
}

func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}

func sessionID(c *gin.Context, fields map[string]string) string {
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	return fields["sessionId"]
}

func sendConfirmationEmail(submission *submissionDB.Submission) {
	submissionType := "Text Story"
	if submission.Content.AudioRecording.HasRecording {
		submissionType = "Audio Recording"
	}
	if len(submission.Content.UploadedFiles) > 0 {
		submissionType = "File Upload"
	}

	payload := map[string]string{
		"firstName":           submission.PersonalInfo.FirstName,
		"lastName":            submission.PersonalInfo.LastName,
		"email":               submission.PersonalInfo.Email,
		"zipCode":             submission.PersonalInfo.ZipCode,
		"submissionType":      submissionType,
		"submittedAt":         submission.SubmittedAt.Format("2006-01-02 15:04"),
		"consentAgreed":       "Yes",
		"continuedEngagement": "No",
	}
	if submission.Consent.ContinuedEngagement {
		payload["continuedEngagement"] = "Yes"
	}
	if submission.ProcResponses.Question1 != "" {
		payload["procQuestion1"] = submission.ProcResponses.Question1
	}
	if submission.ProcResponses.Question2 != "" {
		payload["procQuestion2"] = submission.ProcResponses.Question2
	}

	if err := emailsending.SendSubmissionConfirmationEmail(submission.PersonalInfo.Email, payload); err != nil {
		slog.Error("failed to send confirmation email",
			slog.String("submissionID", submission.ID.Hex()),
			slog.String("error", err.Error()))
	}
}

package main

import (
	"strings"
	"time"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

// LegacySubmission mirrors one entry of the exported JSON array. Every
// sub-object is optional in the export, missing pieces get zero values in
// the mapped document.
type LegacySubmission struct {
	SubmittedAt  string `json:"submittedAt"`
	PersonalInfo struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		ZipCode   string `json:"zipCode"`
	} `json:"personalInfo"`
	Content struct {
		TextStory      string `json:"textStory"`
		AudioRecording *struct {
			Filename     string  `json:"filename"`
			Filepath     string  `json:"filepath"`
			Duration     float64 `json:"duration"`
			Format       string  `json:"format"`
			RecordedAt   string  `json:"recordedAt"`
			HasRecording bool    `json:"hasRecording"`
			Size         int64   `json:"size"`
		} `json:"audioRecording"`
		UploadedFiles []struct {
			Filename     string `json:"filename"`
			OriginalName string `json:"originalName"`
			Mimetype     string `json:"mimetype"`
			Size         int64  `json:"size"`
			UploadedAt   string `json:"uploadedAt"`
		} `json:"uploadedFiles"`
	} `json:"content"`
	ProcResponses struct {
		Question1 string `json:"question1"`
		Question2 string `json:"question2"`
	} `json:"procResponses"`
	Consent struct {
		Agreed              bool   `json:"agreed"`
		AgreedAt            string `json:"agreedAt"`
		ContinuedEngagement bool   `json:"continuedEngagement"`
	} `json:"consent"`
	Tracking struct {
		UserAgent string `json:"userAgent"`
		IPAddress string `json:"ipAddress"`
		SessionID string `json:"sessionId"`
	} `json:"tracking"`
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// parseLegacyTime accepts the timestamp formats found in the export.
func parseLegacyTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z0700",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// mapLegacySubmission converts one legacy entry into the current schema.
// The review state is reset: every imported submission starts as pending
// regardless of what the export carried.
func mapLegacySubmission(legacy LegacySubmission) submissionDB.Submission {
	submittedAt := parseLegacyTime(legacy.SubmittedAt)
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}

	submission := submissionDB.Submission{
		SubmittedAt: submittedAt,
		PersonalInfo: submissionDB.PersonalInfo{
			FirstName: strings.TrimSpace(legacy.PersonalInfo.FirstName),
			LastName:  strings.TrimSpace(legacy.PersonalInfo.LastName),
			Email:     strings.ToLower(strings.TrimSpace(legacy.PersonalInfo.Email)),
			ZipCode:   strings.TrimSpace(legacy.PersonalInfo.ZipCode),
		},
		Content: submissionDB.Content{
			TextStory:     legacy.Content.TextStory,
			UploadedFiles: []submissionDB.UploadedFile{},
		},
		ProcResponses: submissionDB.ProcResponses{
			Question1: legacy.ProcResponses.Question1,
			Question2: legacy.ProcResponses.Question2,
		},
		Consent: submissionDB.Consent{
			Agreed:              legacy.Consent.Agreed,
			AgreedAt:            parseLegacyTime(legacy.Consent.AgreedAt),
			ContinuedEngagement: legacy.Consent.ContinuedEngagement,
		},
		Tracking: submissionDB.Tracking{
			UserAgent: legacy.Tracking.UserAgent,
			IPAddress: legacy.Tracking.IPAddress,
			SessionID: legacy.Tracking.SessionID,
		},
		Status:     submissionDB.SUBMISSION_STATUS_PENDING,
		AdminNotes: legacy.AdminNotes,
	}

	if legacy.Content.AudioRecording != nil && legacy.Content.AudioRecording.Filename != "" {
		submission.Content.AudioRecording = submissionDB.AudioRecording{
			Filename:     legacy.Content.AudioRecording.Filename,
			Filepath:     legacy.Content.AudioRecording.Filepath,
			Duration:     legacy.Content.AudioRecording.Duration,
			Format:       legacy.Content.AudioRecording.Format,
			RecordedAt:   parseLegacyTime(legacy.Content.AudioRecording.RecordedAt),
			HasRecording: true,
			Size:         legacy.Content.AudioRecording.Size,
		}
	}

	for _, file := range legacy.Content.UploadedFiles {
		uploadedAt := parseLegacyTime(file.UploadedAt)
		if uploadedAt.IsZero() {
			uploadedAt = submittedAt
		}
		submission.Content.UploadedFiles = append(submission.Content.UploadedFiles, submissionDB.UploadedFile{
			Filename:     file.Filename,
			OriginalName: file.OriginalName,
			Mimetype:     file.Mimetype,
			Size:         file.Size,
			UploadedAt:   uploadedAt,
		})
	}

	return submission
}

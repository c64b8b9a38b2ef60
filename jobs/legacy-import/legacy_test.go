package main

import (
	"encoding/json"
	"testing"
	"time"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

const legacyEntryJSON = `{
	"submittedAt": "2023-05-17T10:30:00Z",
	"personalInfo": {
		"firstName": " Jane ",
		"lastName": "Smith",
		"email": "Jane.Smith@Example.com",
		"zipCode": "12345"
	},
	"content": {
		"textStory": "My story.",
		"audioRecording": {
			"filename": "1684319400000_ab12cd34.webm",
			"filepath": "/uploads/1684319400000_ab12cd34.webm",
			"duration": 42.5,
			"format": "webm",
			"recordedAt": "2023-05-17T10:29:00Z",
			"hasRecording": true,
			"size": 204800
		},
		"uploadedFiles": [
			{
				"filename": "1684319400001_ef56ab78.pdf",
				"originalName": "story.pdf",
				"mimetype": "application/pdf",
				"size": 1024
			}
		]
	},
	"consent": {"agreed": true, "agreedAt": "2023-05-17T10:30:00Z", "continuedEngagement": true},
	"status": "approved"
}`

func TestMapLegacySubmission(t *testing.T) {
	var legacy LegacySubmission
	if err := json.Unmarshal([]byte(legacyEntryJSON), &legacy); err != nil {
		t.Fatalf("could not parse fixture: %v", err)
	}

	submission := mapLegacySubmission(legacy)

	if submission.Status != submissionDB.SUBMISSION_STATUS_PENDING {
		t.Errorf("expected status to be reset to pending, got %q", submission.Status)
	}
	if submission.PersonalInfo.FirstName != "Jane" {
		t.Errorf("expected trimmed first name, got %q", submission.PersonalInfo.FirstName)
	}
	if submission.PersonalInfo.Email != "jane.smith@example.com" {
		t.Errorf("expected lowercased email, got %q", submission.PersonalInfo.Email)
	}

	expectedTime, _ := time.Parse(time.RFC3339, "2023-05-17T10:30:00Z")
	if !submission.SubmittedAt.Equal(expectedTime) {
		t.Errorf("unexpected submittedAt: %v", submission.SubmittedAt)
	}

	if !submission.Content.AudioRecording.HasRecording {
		t.Error("expected audio recording to be mapped")
	}
	if submission.Content.AudioRecording.Duration != 42.5 {
		t.Errorf("unexpected audio duration: %v", submission.Content.AudioRecording.Duration)
	}

	if len(submission.Content.UploadedFiles) != 1 {
		t.Fatalf("expected one uploaded file, got %d", len(submission.Content.UploadedFiles))
	}
	// file without uploadedAt inherits the submission timestamp
	if !submission.Content.UploadedFiles[0].UploadedAt.Equal(expectedTime) {
		t.Errorf("unexpected uploadedAt fallback: %v", submission.Content.UploadedFiles[0].UploadedAt)
	}
}

func TestMapLegacySubmissionDefaults(t *testing.T) {
	submission := mapLegacySubmission(LegacySubmission{})

	if submission.Status != submissionDB.SUBMISSION_STATUS_PENDING {
		t.Errorf("expected pending status, got %q", submission.Status)
	}
	if submission.SubmittedAt.IsZero() {
		t.Error("expected submittedAt fallback to be set")
	}
	if submission.Content.AudioRecording.HasRecording {
		t.Error("did not expect an audio recording")
	}
	if submission.Content.UploadedFiles == nil {
		t.Error("expected empty slice for uploaded files, not nil")
	}
}

func TestParseLegacyTime(t *testing.T) {
	tests := []struct {
		value string
		zero  bool
	}{
		{"2023-05-17T10:30:00Z", false},
		{"2023-05-17T10:30:00.123Z", false},
		{"2023-05-17 10:30:00", false},
		{"2023-05-17", false},
		{"", true},
		{"not a date", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := parseLegacyTime(tt.value)
			if got.IsZero() != tt.zero {
				t.Errorf("parseLegacyTime(%q).IsZero() = %v, want %v", tt.value, got.IsZero(), tt.zero)
			}
		})
	}
}

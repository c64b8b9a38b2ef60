package templates

import (
	"strings"
	"testing"
)

func TestResolveTemplate(t *testing.T) {
	content, err := ResolveTemplate("test", "Hello {{.name}}!", map[string]string{"name": "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Hello Jane!" {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestResolveTemplateEmptyDef(t *testing.T) {
	if _, err := ResolveTemplate("test", "   ", nil); err == nil {
		t.Error("expected error for empty template")
	}
}

func TestResolveTemplateBadSyntax(t *testing.T) {
	if _, err := ResolveTemplate("test", "{{.unclosed", nil); err == nil {
		t.Error("expected error for broken template")
	}
}

func TestGetSubmissionConfirmationEmail(t *testing.T) {
	subject, content, err := GetSubmissionConfirmationEmail(map[string]string{
		"firstName":           "Jane",
		"lastName":            "Smith",
		"email":               "jane@example.com",
		"zipCode":             "12345",
		"submissionType":      "Text Story",
		"submittedAt":         "2024-01-01 10:00",
		"consentAgreed":       "Yes",
		"continuedEngagement": "No",
		"teamName":            "Storyline",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject == "" {
		t.Error("expected non-empty subject")
	}
	if !strings.Contains(content, "Jane Smith") {
		t.Errorf("expected name in content, got: %s", content)
	}
	if !strings.Contains(content, "Storyline") {
		t.Errorf("expected team name in content, got: %s", content)
	}
	// optional responses not provided, the blocks should be absent
	if strings.Contains(content, "Response 1") {
		t.Errorf("did not expect response block, got: %s", content)
	}
}

func TestGetSubmissionConfirmationEmailWithResponses(t *testing.T) {
	_, content, err := GetSubmissionConfirmationEmail(map[string]string{
		"firstName":           "Jane",
		"lastName":            "Smith",
		"email":               "jane@example.com",
		"zipCode":             "12345",
		"submissionType":      "Text Story",
		"submittedAt":         "2024-01-01 10:00",
		"consentAgreed":       "Yes",
		"continuedEngagement": "No",
		"teamName":            "Storyline",
		"procQuestion1":       "first answer",
		"procQuestion2":       "second answer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "Response 1: first answer") {
		t.Errorf("expected first response block, got: %s", content)
	}
	if !strings.Contains(content, "Response 2: second answer") {
		t.Errorf("expected second response block, got: %s", content)
	}
}

func TestGetStatusUpdateEmail(t *testing.T) {
	payload := map[string]string{"submissionId": "abc123", "teamName": "Storyline"}

	subject, content, err := GetStatusUpdateEmail("approved", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Submission Approved" {
		t.Errorf("unexpected subject: %s", subject)
	}
	if !strings.Contains(content, "approved") {
		t.Errorf("expected approval wording, got: %s", content)
	}

	subject, content, err = GetStatusUpdateEmail("rejected", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Submission Rejected" {
		t.Errorf("unexpected subject: %s", subject)
	}
	if !strings.Contains(content, "cannot use your story") {
		t.Errorf("expected rejection wording, got: %s", content)
	}
}

package apihandlers

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

func TestNormalizeFormFields(t *testing.T) {
	fields := normalizeFormFields(map[string][]string{
		"firstName": {"Jane"},
		"email":     {"jane@example.com", "second@example.com"},
		"empty":     {},
	})

	if fields["firstName"] != "Jane" {
		t.Errorf("unexpected firstName: %q", fields["firstName"])
	}
	if fields["email"] != "jane@example.com" {
		t.Errorf("expected first value to win, got %q", fields["email"])
	}
	if _, ok := fields["empty"]; ok {
		t.Error("field without values should be absent")
	}
}

func TestParseAudioPayload(t *testing.T) {
	payload := parseAudioPayload(`{"blobData":"aGVsbG8=","duration":12.5}`)
	if payload == nil {
		t.Fatal("expected payload to parse")
	}
	if payload.BlobData != "aGVsbG8=" {
		t.Errorf("unexpected blob data: %q", payload.BlobData)
	}
	if payload.Duration != 12.5 {
		t.Errorf("unexpected duration: %v", payload.Duration)
	}
	if payload.Format != "webm" {
		t.Errorf("expected default format webm, got %q", payload.Format)
	}
}

func TestParseAudioPayloadRejectsGarbage(t *testing.T) {
	if parseAudioPayload("") != nil {
		t.Error("empty field should yield no payload")
	}
	if parseAudioPayload("not json at all") != nil {
		t.Error("invalid JSON should yield no payload")
	}
	if parseAudioPayload(`{"duration":5}`) != nil {
		t.Error("payload without blob data should yield no payload")
	}
}

func TestParseBoolField(t *testing.T) {
	for _, truthy := range []string{"true", "TRUE", "1", "on", "yes", " true "} {
		if !parseBoolField(truthy) {
			t.Errorf("expected %q to parse as true", truthy)
		}
	}
	for _, falsy := range []string{"", "false", "0", "off", "nope"} {
		if parseBoolField(falsy) {
			t.Errorf("expected %q to parse as false", falsy)
		}
	}
}

func TestPaginationInfos(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int64
		total       int64
		totalPages  int64
		hasNext     bool
		hasPrev     bool
	}{
		{"first of many", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginationInfos(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.totalPages {
				t.Errorf("totalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNextPage != tt.hasNext {
				t.Errorf("hasNextPage = %v, want %v", p.HasNextPage, tt.hasNext)
			}
			if p.HasPrevPage != tt.hasPrev {
				t.Errorf("hasPrevPage = %v, want %v", p.HasPrevPage, tt.hasPrev)
			}
			if p.TotalSubmissions != tt.total {
				t.Errorf("totalSubmissions = %d, want %d", p.TotalSubmissions, tt.total)
			}
		})
	}
}

func TestApprovedFeedItem(t *testing.T) {
	submittedAt, _ := time.Parse(time.RFC3339, "2024-01-01T10:00:00Z")
	submission := submissionDB.Submission{
		ID:          primitive.NewObjectID(),
		SubmittedAt: submittedAt,
		PersonalInfo: submissionDB.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
			ZipCode:   "12345",
		},
		Content: submissionDB.Content{
			TextStory: "My story.",
			AudioRecording: submissionDB.AudioRecording{
				Filename:     "1700000000000_ab12cd34.webm",
				Duration:     42.5,
				HasRecording: true,
				Size:         204800,
			},
		},
		ProcResponses: submissionDB.ProcResponses{Question1: "first answer"},
	}

	item := approvedFeedItem(submission)

	if item.FirstName != "Jane" || item.LastName != "Smith" {
		t.Errorf("unexpected name: %q %q", item.FirstName, item.LastName)
	}
	if item.AudioURL != "/uploads/1700000000000_ab12cd34.webm" {
		t.Errorf("unexpected audio url: %q", item.AudioURL)
	}
	if item.AudioSize != 204800 {
		t.Errorf("unexpected audio size: %d", item.AudioSize)
	}
	if item.ProcResponses.Question1 != "first answer" {
		t.Errorf("unexpected responses: %+v", item.ProcResponses)
	}
	if item.SubmittedAt != "2024-01-01T10:00:00Z" {
		t.Errorf("unexpected submittedAt: %q", item.SubmittedAt)
	}

	// contact details must not appear in the serialized feed item
	serialized, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("could not marshal feed item: %v", err)
	}
	for _, key := range []string{"lastName", "audioSize", "procResponses"} {
		if !jsonHasKey(serialized, key) {
			t.Errorf("expected key %q in feed item: %s", key, serialized)
		}
	}
	for _, key := range []string{"email", "zipCode"} {
		if jsonHasKey(serialized, key) {
			t.Errorf("did not expect key %q in feed item: %s", key, serialized)
		}
	}
}

func jsonHasKey(serialized []byte, key string) bool {
	var asMap map[string]interface{}
	if err := json.Unmarshal(serialized, &asMap); err != nil {
		return false
	}
	_, ok := asMap[key]
	return ok
}

package validation

import (
	"strings"
	"testing"
)

func validFormData() FormData {
	return FormData{
		FirstName:     "Jane",
		LastName:      "Smith",
		Email:         "jane.smith@example.com",
		ZipCode:       "12345",
		TextStory:     "My story.",
		ConsentAgreed: true,
	}
}

func TestValidateFormRequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*FormData)
		expectError string
	}{
		{
			name:        "missing first name",
			mutate:      func(f *FormData) { f.FirstName = "" },
			expectError: "firstName",
		},
		{
			name:        "whitespace first name",
			mutate:      func(f *FormData) { f.FirstName = "   " },
			expectError: "firstName",
		},
		{
			name:        "missing last name",
			mutate:      func(f *FormData) { f.LastName = "" },
			expectError: "lastName",
		},
		{
			name:        "missing email",
			mutate:      func(f *FormData) { f.Email = "" },
			expectError: "email",
		},
		{
			name:        "invalid email",
			mutate:      func(f *FormData) { f.Email = "not-an-email" },
			expectError: "email",
		},
		{
			name:        "missing zip",
			mutate:      func(f *FormData) { f.ZipCode = "" },
			expectError: "zipCode",
		},
		{
			name:        "invalid zip",
			mutate:      func(f *FormData) { f.ZipCode = "abcde" },
			expectError: "zipCode",
		},
		{
			name:        "consent not agreed",
			mutate:      func(f *FormData) { f.ConsentAgreed = false },
			expectError: "consentAgreed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formData := validFormData()
			tt.mutate(&formData)

			result := ValidateForm(formData)
			if result.IsValid {
				t.Error("expected form to be invalid")
			}
			if _, ok := result.Errors[tt.expectError]; !ok {
				t.Errorf("expected error for field %q, got: %v", tt.expectError, result.Errors)
			}
		})
	}
}

func TestValidateFormValid(t *testing.T) {
	result := ValidateForm(validFormData())
	if !result.IsValid {
		t.Errorf("expected valid form, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected empty error map, got: %v", result.Errors)
	}
}

func TestValidateFormContentPresence(t *testing.T) {
	base := validFormData()
	base.TextStory = ""
	base.HasAudioRecording = false
	base.UploadedFileCount = 0

	result := ValidateForm(base)
	if result.IsValid {
		t.Error("expected form without any content to be invalid")
	}
	if _, ok := result.Errors["content"]; !ok {
		t.Errorf("expected content error, got: %v", result.Errors)
	}

	// adding any one of the three content forms clears the error
	withText := base
	withText.TextStory = "some story"
	if _, ok := ValidateForm(withText).Errors["content"]; ok {
		t.Error("text story should satisfy the content requirement")
	}

	withAudio := base
	withAudio.HasAudioRecording = true
	if _, ok := ValidateForm(withAudio).Errors["content"]; ok {
		t.Error("audio recording should satisfy the content requirement")
	}

	withFiles := base
	withFiles.UploadedFileCount = 1
	if _, ok := ValidateForm(withFiles).Errors["content"]; ok {
		t.Error("uploaded file should satisfy the content requirement")
	}
}

func TestValidateZipCode(t *testing.T) {
	tests := []struct {
		zip   string
		valid bool
	}{
		{"12345", true},
		{"12345-6789", true},
		{"1234", false},
		{"123456", false},
		{"abcde", false},
		{"12345-678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			result := ValidateZipCode(tt.zip)
			if result.IsValid != tt.valid {
				t.Errorf("ValidateZipCode(%q).IsValid = %v, want %v", tt.zip, result.IsValid, tt.valid)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.smith+tag@sub.example.org", true},
		{"", false},
		{"jane", false},
		{"jane@example", false},
		{"jane @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			result := ValidateEmail(tt.email)
			if result.IsValid != tt.valid {
				t.Errorf("ValidateEmail(%q).IsValid = %v, want %v", tt.email, result.IsValid, tt.valid)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if result := ValidateName("", "First name"); result.IsValid {
		t.Error("expected empty name to be invalid")
	}
	if result := ValidateName("J", "First name"); result.IsValid {
		t.Error("expected single character name to be invalid")
	}
	if result := ValidateName("Jo", "First name"); !result.IsValid {
		t.Errorf("expected two character name to be valid, got: %v", result.Error)
	}
}

func TestValidateFileUploadSingleOversized(t *testing.T) {
	result := ValidateFileUpload([]FileInfo{
		{Name: "big.mp4", Mimetype: "video/mp4", Size: 60 * 1024 * 1024},
	})
	if result.IsValid {
		t.Error("expected 60MB file to be rejected")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "50MB") {
		t.Errorf("expected 50MB limit message, got: %v", result.Errors)
	}
}

func TestValidateFileUploadTotalSize(t *testing.T) {
	// each file passes individually, the batch total (105MB) does not
	result := ValidateFileUpload([]FileInfo{
		{Name: "a.mp3", Mimetype: "audio/mpeg", Size: 30 * 1024 * 1024},
		{Name: "b.mp3", Mimetype: "audio/mpeg", Size: 30 * 1024 * 1024},
		{Name: "c.mp4", Mimetype: "video/mp4", Size: 45 * 1024 * 1024},
	})
	if result.IsValid {
		t.Error("expected batch over 100MB to be rejected")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "100MB") {
		t.Errorf("expected total size message, got: %v", result.Errors)
	}
}

func TestValidateFileUploadUnsupportedType(t *testing.T) {
	result := ValidateFileUpload([]FileInfo{
		{Name: "script.exe", Mimetype: "application/octet-stream", Size: 100},
		{Name: "photo.png", Mimetype: "image/png", Size: 100},
	})
	if result.IsValid {
		t.Error("expected unsupported type to be rejected")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "script.exe") {
		t.Errorf("expected message for script.exe only, got: %v", result.Errors)
	}
}

func TestValidateFileUploadEmpty(t *testing.T) {
	result := ValidateFileUpload(nil)
	if !result.IsValid {
		t.Errorf("expected empty batch to be valid, got: %v", result.Errors)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello  "); got != "hello" {
		t.Errorf("expected trimmed input, got %q", got)
	}
	if got := SanitizeInput("<script>alert(1)</script>"); strings.ContainsAny(got, "<>") {
		t.Errorf("expected angle brackets removed, got %q", got)
	}
	long := strings.Repeat("a", 1500)
	if got := SanitizeInput(long); len(got) != 1000 {
		t.Errorf("expected input capped at 1000 chars, got %d", len(got))
	}
}

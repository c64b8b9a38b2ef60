package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// US zip codes, 5 digit or 5+4 format
	zipCodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

const (
	MaxFileSize  = 50 * 1024 * 1024  // per file
	MaxTotalSize = 100 * 1024 * 1024 // per batch
)

// AllowedFileTypes maps accepted MIME types to a human readable label.
var AllowedFileTypes = map[string]string{
	"audio/wav":       "WAV Audio",
	"audio/mp3":       "MP3 Audio",
	"audio/mpeg":      "MP3 Audio",
	"audio/ogg":       "OGG Audio",
	"video/mp4":       "MP4 Video",
	"video/avi":       "AVI Video",
	"video/mov":       "MOV Video",
	"video/quicktime": "MOV Video",
	"image/jpeg":      "JPEG Image",
	"image/jpg":       "JPG Image",
	"image/png":       "PNG Image",
	"image/gif":       "GIF Image",
	"image/webp":      "WebP Image",
}

// FormData is the candidate submission as seen by the validator. Content
// presence is reduced to flags so the same rules serve intake and tests.
type FormData struct {
	FirstName string
	LastName  string
	Email     string
	ZipCode   string

	TextStory         string
	HasAudioRecording bool
	UploadedFileCount int

	ConsentAgreed bool
}

type FormValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

type FieldValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// FileInfo describes one uploaded file for batch validation.
type FileInfo struct {
	Name     string
	Mimetype string
	Size     int64
}

type FileValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateForm checks a whole candidate submission and returns a field name
// to message mapping for everything that is wrong with it.
func ValidateForm(formData FormData) FormValidationResult {
	errors := map[string]string{}

	if strings.TrimSpace(formData.FirstName) == "" {
		errors["firstName"] = "First name is required"
	}

	if strings.TrimSpace(formData.LastName) == "" {
		errors["lastName"] = "Last name is required"
	}

	if strings.TrimSpace(formData.Email) == "" {
		errors["email"] = "Email address is required"
	} else if !emailRegex.MatchString(strings.TrimSpace(formData.Email)) {
		errors["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(formData.ZipCode) == "" {
		errors["zipCode"] = "Zip code is required"
	} else if !zipCodeRegex.MatchString(strings.TrimSpace(formData.ZipCode)) {
		errors["zipCode"] = "Please enter a valid zip code (e.g., 12345 or 12345-6789)"
	}

	// at least one form of content required
	hasTextStory := strings.TrimSpace(formData.TextStory) != ""
	if !formData.HasAudioRecording && formData.UploadedFileCount < 1 && !hasTextStory {
		errors["content"] = "Please provide your story through audio recording, file upload, or text entry"
	}

	if !formData.ConsentAgreed {
		errors["consentAgreed"] = "You must agree to the consent and release terms to submit"
	}

	return FormValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

func ValidateEmail(email string) FieldValidationResult {
	if strings.TrimSpace(email) == "" {
		return FieldValidationResult{IsValid: false, Error: "Email address is required"}
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return FieldValidationResult{IsValid: false, Error: "Please enter a valid email address"}
	}
	return FieldValidationResult{IsValid: true}
}

func ValidateZipCode(zipCode string) FieldValidationResult {
	if strings.TrimSpace(zipCode) == "" {
		return FieldValidationResult{IsValid: false, Error: "Zip code is required"}
	}
	if !zipCodeRegex.MatchString(strings.TrimSpace(zipCode)) {
		return FieldValidationResult{IsValid: false, Error: "Please enter a valid zip code (e.g., 12345 or 12345-6789)"}
	}
	return FieldValidationResult{IsValid: true}
}

func ValidateName(name string, fieldName string) FieldValidationResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return FieldValidationResult{IsValid: false, Error: fieldName + " is required"}
	}
	if len(trimmed) < 2 {
		return FieldValidationResult{IsValid: false, Error: fieldName + " must be at least 2 characters long"}
	}
	return FieldValidationResult{IsValid: true}
}

// ValidateFileUpload checks each file against the MIME allow-list and the
// per-file size ceiling and the batch against the total size ceiling.
// Violations accumulate instead of failing fast; files that already failed
// a check do not count towards the batch total.
func ValidateFileUpload(files []FileInfo) FileValidationResult {
	errors := []string{}

	if len(files) == 0 {
		return FileValidationResult{IsValid: true, Errors: errors}
	}

	var totalSize int64
	for _, file := range files {
		if _, ok := AllowedFileTypes[file.Mimetype]; !ok {
			errors = append(errors, fmt.Sprintf("%s: File type not supported. Allowed types: %s", file.Name, allowedTypeLabels()))
			continue
		}

		if file.Size > MaxFileSize {
			errors = append(errors, fmt.Sprintf("%s: File size exceeds 50MB limit", file.Name))
			continue
		}

		totalSize += file.Size
	}

	if totalSize > MaxTotalSize {
		errors = append(errors, "Total file size exceeds 100MB limit")
	}

	return FileValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

// SanitizeInput trims, strips angle brackets and caps the length of a
// free-form text input.
func SanitizeInput(input string) string {
	out := strings.TrimSpace(input)
	out = strings.ReplaceAll(out, "<", "")
	out = strings.ReplaceAll(out, ">", "")
	if len(out) > 1000 {
		out = out[:1000]
	}
	return out
}

func allowedTypeLabels() string {
	seen := map[string]bool{}
	labels := []string{}
	for _, label := range AllowedFileTypes {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	// stable output for error messages
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}

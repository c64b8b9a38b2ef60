package submissions

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// submission review states
const (
	SUBMISSION_STATUS_PENDING  = "pending"
	SUBMISSION_STATUS_REVIEWED = "reviewed"
	SUBMISSION_STATUS_APPROVED = "approved"
	SUBMISSION_STATUS_REJECTED = "rejected"
)

func IsValidSubmissionStatus(status string) bool {
	switch status {
	case SUBMISSION_STATUS_PENDING, SUBMISSION_STATUS_REVIEWED, SUBMISSION_STATUS_APPROVED, SUBMISSION_STATUS_REJECTED:
		return true
	default:
		return false
	}
}

type PersonalInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	ZipCode   string `bson:"zipCode" json:"zipCode"`
}

type AudioRecording struct {
	Filename     string    `bson:"filename" json:"filename"`
	Filepath     string    `bson:"filepath" json:"filepath"`
	Duration     float64   `bson:"duration" json:"duration"`
	Format       string    `bson:"format" json:"format"`
	RecordedAt   time.Time `bson:"recordedAt,omitempty" json:"recordedAt,omitempty"`
	HasRecording bool      `bson:"hasRecording" json:"hasRecording"`
	Size         int64     `bson:"size" json:"size"`
}

type UploadedFile struct {
	Filename     string    `bson:"filename" json:"filename"`
	OriginalName string    `bson:"originalName" json:"originalName"`
	Mimetype     string    `bson:"mimetype" json:"mimetype"`
	Size         int64     `bson:"size" json:"size"`
	UploadedAt   time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

type Content struct {
	TextStory      string         `bson:"textStory" json:"textStory"`
	AudioRecording AudioRecording `bson:"audioRecording" json:"audioRecording"`
	UploadedFiles  []UploadedFile `bson:"uploadedFiles" json:"uploadedFiles"`
}

type ProcResponses struct {
	Question1 string `bson:"question1" json:"question1"`
	Question2 string `bson:"question2" json:"question2"`
}

type Consent struct {
	Agreed              bool      `bson:"agreed" json:"agreed"`
	AgreedAt            time.Time `bson:"agreedAt" json:"agreedAt"`
	ContinuedEngagement bool      `bson:"continuedEngagement" json:"continuedEngagement"`
}

type Tracking struct {
	UserAgent string `bson:"userAgent" json:"userAgent"`
	IPAddress string `bson:"ipAddress" json:"ipAddress"`
	SessionID string `bson:"sessionId" json:"sessionId"`
}

// Submission is one user-provided story record. Created once at intake,
// only the review fields (status, adminNotes, reviewedAt, reviewedBy)
// change afterwards.
type Submission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmittedAt   time.Time          `bson:"submittedAt" json:"submittedAt"`
	PersonalInfo  PersonalInfo       `bson:"personalInfo" json:"personalInfo"`
	Content       Content            `bson:"content" json:"content"`
	ProcResponses ProcResponses      `bson:"procResponses" json:"procResponses"`
	Consent       Consent            `bson:"consent" json:"consent"`
	Tracking      Tracking           `bson:"tracking" json:"tracking"`
	Status        string             `bson:"status" json:"status"`
	AdminNotes    string             `bson:"adminNotes" json:"adminNotes"`
	ReviewedAt    time.Time          `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy    string             `bson:"reviewedBy" json:"reviewedBy"`
}

type StatusStats struct {
	Pending  int64 `bson:"pending" json:"pending"`
	Reviewed int64 `bson:"reviewed" json:"reviewed"`
	Approved int64 `bson:"approved" json:"approved"`
	Rejected int64 `bson:"rejected" json:"rejected"`
}

// SubmissionListFilter describes the admin listing query.
// Status "" or "all" means no status filtering.
type SubmissionListFilter struct {
	Status string
	Search string
	Page   int64
	Limit  int64
}

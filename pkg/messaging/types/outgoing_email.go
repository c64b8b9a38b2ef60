package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// message types
const (
	EMAIL_TYPE_SUBMISSION_CONFIRMATION = "submission-confirmation"
	EMAIL_TYPE_STATUS_UPDATE           = "status-update"
)

type HeaderOverrides struct {
	From      string   `bson:"from" json:"from" yaml:"from"`
	Sender    string   `bson:"sender" json:"sender" yaml:"sender"`
	ReplyTo   []string `bson:"replyTo" json:"replyTo" yaml:"replyTo"`
	NoReplyTo bool     `bson:"noReplyTo" json:"noReplyTo" yaml:"noReplyTo"`
}

type OutgoingEmail struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MessageType     string             `bson:"messageType" json:"messageType"`
	To              []string           `bson:"to" json:"to"`
	Subject         string             `bson:"subject" json:"subject"`
	HeaderOverrides *HeaderOverrides   `bson:"headerOverrides" json:"headerOverrides"`
	Content         string             `bson:"content" json:"content"`
	AddedAt         int64              `bson:"addedAt" json:"addedAt"`
	SentAt          time.Time          `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	HighPrio        bool               `bson:"highPrio" json:"highPrio"`
	LastSendAttempt int64              `bson:"lastSendAttempt" json:"lastSendAttempt"`
}

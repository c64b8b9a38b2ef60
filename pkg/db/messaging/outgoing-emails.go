package messaging

import (
	"time"

	messagingTypes "github.com/parthoooo/story-teller/pkg/messaging/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddToOutgoingEmails parks an email that could not be delivered so that an
// operator can inspect or resend it later.
func (dbService *MessagingDBService) AddToOutgoingEmails(email messagingTypes.OutgoingEmail) (messagingTypes.OutgoingEmail, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if email.AddedAt <= 0 {
		email.AddedAt = time.Now().Unix()
	}

	res, err := dbService.collectionOutgoingEmails().InsertOne(ctx, email)
	if err != nil {
		return email, err
	}
	email.ID = res.InsertedID.(primitive.ObjectID)
	return email, nil
}

// AddToSentEmails records a successful delivery. The content is stripped, we
// only keep metadata about what was sent when.
func (dbService *MessagingDBService) AddToSentEmails(email messagingTypes.OutgoingEmail) (messagingTypes.OutgoingEmail, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	email.Content = ""
	email.SentAt = time.Now().UTC()
	email.ID = primitive.NilObjectID

	res, err := dbService.collectionSentEmails().InsertOne(ctx, email)
	if err != nil {
		return email, err
	}
	email.ID = res.InsertedID.(primitive.ObjectID)
	return email, nil
}

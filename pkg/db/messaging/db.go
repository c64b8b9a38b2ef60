package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/parthoooo/story-teller/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	COLLECTION_NAME_OUTGOING_EMAILS = "outgoing_emails"
	COLLECTION_NAME_SENT_EMAILS     = "sent_emails"
)

type MessagingDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewMessagingDBService(configs db.DBConfig) (*MessagingDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	mDBSc := &MessagingDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := mDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for messaging DB", slog.String("error", err.Error()))
		}
	}

	return mDBSc, nil
}

func (dbService *MessagingDBService) getDBName() string {
	return dbService.DBNamePrefix + "storyteller"
}

func (dbService *MessagingDBService) collectionOutgoingEmails() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_OUTGOING_EMAILS)
}

func (dbService *MessagingDBService) collectionSentEmails() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_SENT_EMAILS)
}

func (dbService *MessagingDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *MessagingDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for messaging DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionOutgoingEmails().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "addedAt", Value: 1}},
		},
	)
	if err != nil {
		slog.Error("Error creating index for outgoing emails", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionSentEmails().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "sentAt", Value: 1}},
		},
	)
	if err != nil {
		slog.Error("Error creating index for sent emails", slog.String("error", err.Error()))
	}

	return nil
}

package submissions

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
	COLLECTION_NAME_SUBMISSIONS = "submissions"
)

type SubmissionDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewSubmissionDBService(configs db.DBConfig) (*SubmissionDBService, error) {
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

	sDBSc := &SubmissionDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := sDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for submission DB", slog.String("error", err.Error()))
		}
	}

	return sDBSc, nil
}

func (dbService *SubmissionDBService) getDBName() string {
	return dbService.DBNamePrefix + "storyteller"
}

func (dbService *SubmissionDBService) collectionSubmissions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_SUBMISSIONS)
}

func (dbService *SubmissionDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *SubmissionDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for submission DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSubmissions().Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys: bson.D{{Key: "submittedAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "personalInfo.email", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for submissions collection", slog.String("error", err.Error()))
	}

	return nil
}

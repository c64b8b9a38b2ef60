package submissions

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *SubmissionDBService) CreateSubmission(submission *Submission) (*Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	if submission.Status == "" {
		submission.Status = SUBMISSION_STATUS_PENDING
	}
	if submission.Content.UploadedFiles == nil {
		submission.Content.UploadedFiles = []UploadedFile{}
	}

	res, err := dbService.collectionSubmissions().InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = res.InsertedID.(primitive.ObjectID)
	return submission, nil
}

func (dbService *SubmissionDBService) GetSubmissionByID(id string) (*Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var submission Submission
	err = dbService.collectionSubmissions().FindOne(ctx, bson.M{"_id": objID}).Decode(&submission)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// buildListQuery translates the admin listing filter into a mongo query.
// Search matches first name, last name, email or zip code case-insensitively.
func buildListQuery(filter SubmissionListFilter) bson.M {
	query := bson.M{}

	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}

	if filter.Search != "" {
		// user input is matched literally
		searchRegex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"personalInfo.firstName": searchRegex},
			bson.M{"personalInfo.lastName": searchRegex},
			bson.M{"personalInfo.email": searchRegex},
			bson.M{"personalInfo.zipCode": searchRegex},
		}
	}
	return query
}

// GetSubmissions returns one page of submissions, newest first, together
// with the total count of documents matching the filter.
func (dbService *SubmissionDBService) GetSubmissions(filter SubmissionListFilter) (submissions []Submission, totalCount int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	query := buildListQuery(filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := dbService.collectionSubmissions().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	submissions = []Submission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, 0, err
	}

	totalCount, err = dbService.collectionSubmissions().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return submissions, totalCount, nil
}

// GetStatusCounts computes the global status histogram, independent of any
// active listing filter.
func (dbService *SubmissionDBService) GetStatusCounts() (StatusStats, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	stats := StatusStats{}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := dbService.collectionSubmissions().Aggregate(ctx, pipeline)
	if err != nil {
		return stats, err
	}
	defer cursor.Close(ctx)

	var counts []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &counts); err != nil {
		return stats, err
	}

	for _, c := range counts {
		switch c.Status {
		case SUBMISSION_STATUS_PENDING:
			stats.Pending = c.Count
		case SUBMISSION_STATUS_REVIEWED:
			stats.Reviewed = c.Count
		case SUBMISSION_STATUS_APPROVED:
			stats.Approved = c.Count
		case SUBMISSION_STATUS_REJECTED:
			stats.Rejected = c.Count
		}
	}
	return stats, nil
}

// UpdateSubmissionReview sets the review fields on a submission and returns
// the updated document. Returns mongo.ErrNoDocuments if the id is unknown.
func (dbService *SubmissionDBService) UpdateSubmissionReview(id string, status string, adminNotes string, reviewedBy string) (*Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"adminNotes": adminNotes,
		"reviewedAt": time.Now(),
		"reviewedBy": reviewedBy,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Submission
	err = dbService.collectionSubmissions().FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSubmission removes a submission document by id. Returns
// mongo.ErrNoDocuments if nothing was deleted.
func (dbService *SubmissionDBService) DeleteSubmission(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := dbService.collectionSubmissions().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// approvedWithAudioQuery selects the documents eligible for the public feed:
// approved and carrying a stored audio recording.
func approvedWithAudioQuery() bson.M {
	return bson.M{
		"status":                          SUBMISSION_STATUS_APPROVED,
		"content.audioRecording.hasRecording": true,
		"content.audioRecording.filename": bson.M{"$ne": ""},
	}
}

// GetApprovedSubmissionsWithAudio returns one page of the public feed,
// projected to the fields that are safe for public display.
func (dbService *SubmissionDBService) GetApprovedSubmissionsWithAudio(page int64, limit int64) (submissions []Submission, totalCount int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := approvedWithAudioQuery()

	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetProjection(bson.M{
			"personalInfo.firstName":           1,
			"personalInfo.lastName":            1,
			"content.textStory":                1,
			"content.audioRecording.filename":  1,
			"content.audioRecording.duration":  1,
			"content.audioRecording.size":      1,
			"submittedAt":                      1,
			"procResponses":                    1,
		})

	cursor, err := dbService.collectionSubmissions().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	submissions = []Submission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, 0, err
	}

	totalCount, err = dbService.collectionSubmissions().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return submissions, totalCount, nil
}

// FindDuplicate looks up a submission with the same email or the same
// submission timestamp. Used by the legacy import for de-duplication.
func (dbService *SubmissionDBService) FindDuplicate(email string, submittedAt time.Time) (*Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"personalInfo.email": email},
		bson.M{"submittedAt": submittedAt},
	}}

	var submission Submission
	err := dbService.collectionSubmissions().FindOne(ctx, query).Decode(&submission)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (dbService *SubmissionDBService) CountSubmissions() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()
	return dbService.collectionSubmissions().CountDocuments(ctx, bson.M{})
}


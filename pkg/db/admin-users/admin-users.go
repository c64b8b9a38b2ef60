package adminusers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *AdminUserDBService) CountAdminUsers() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()
	return dbService.collectionAdminUsers().CountDocuments(ctx, bson.M{})
}

func (dbService *AdminUserDBService) CreateAdminUser(newUser *AdminUser) (*AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	newUser.CreatedAt = time.Now()
	res, err := dbService.collectionAdminUsers().InsertOne(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = res.InsertedID.(primitive.ObjectID)
	return newUser, nil
}

// GetAdminUserByUsername returns the full record including the password
// hash. Only the login handler should use this.
func (dbService *AdminUserDBService) GetAdminUserByUsername(username string) (*AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user AdminUser
	err := dbService.collectionAdminUsers().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAdminUserByID loads an admin record with the password hash excluded
// through a projection. Used on every authenticated request.
func (dbService *AdminUserDBService) GetAdminUserByID(id string) (*AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user AdminUser
	err = dbService.collectionAdminUsers().FindOne(ctx, bson.M{"_id": objID}, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dbService *AdminUserDBService) UpdateLastLoginAt(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = dbService.collectionAdminUsers().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"lastLoginAt": time.Now()}},
	)
	return err
}

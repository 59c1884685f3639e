package repository

import (
	"context"

	"shiftwave/internal/core"
	client "shiftwave/internal/database/client"
	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VenueRepository struct {
	collection *mongo.Collection
}

func NewVenueRepository(mongoClient *client.MongoClient) *VenueRepository {
	repository := &VenueRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionVenues)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *VenueRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.VenueIndexes)
	return nil
}

func (repository *VenueRepository) GetByID(contextValue context.Context, venueIdentifier primitive.ObjectID) (_ *model.Venue, returnedError error) {
	var venue model.Venue
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": venueIdentifier}).Decode(&venue); returnedError != nil {
		return nil, returnedError
	}
	return &venue, nil
}

// ListAutoSchedule 列出啟用自動排班的營業中場館，供每週 cron 使用
func (repository *VenueRepository) ListAutoSchedule(contextValue context.Context) (_ []*model.Venue, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"status":       core.VenueStatusActive,
		"autoSchedule": true,
	})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Venue
	for cursor.Next(contextValue) {
		var venue model.Venue
		if decodeError := cursor.Decode(&venue); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &venue)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

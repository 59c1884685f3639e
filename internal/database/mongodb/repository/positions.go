package repository

import (
	"context"

	"shiftwave/internal/core"
	client "shiftwave/internal/database/client"
	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PositionRepository struct {
	collection *mongo.Collection
}

func NewPositionRepository(mongoClient *client.MongoClient) *PositionRepository {
	repository := &PositionRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionPositions)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *PositionRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.PositionIndexes)
	return nil
}

// ListActive 依名稱排序回傳場館的啟用職位；排序固定讓排班輸出可重現
func (repository *PositionRepository) ListActive(contextValue context.Context, venueIdentifier primitive.ObjectID) (_ []*model.Position, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue,
		bson.M{"venueId": venueIdentifier, "status": core.PositionStatusActive},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Position
	for cursor.Next(contextValue) {
		var position model.Position
		if decodeError := cursor.Decode(&position); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &position)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

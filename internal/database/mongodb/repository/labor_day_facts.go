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

type LaborDayFactRepository struct {
	collection *mongo.Collection
}

func NewLaborDayFactRepository(mongoClient *client.MongoClient) *LaborDayFactRepository {
	repository := &LaborDayFactRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionLaborDayFacts)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *LaborDayFactRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.LaborDayFactIndexes)
	return nil
}

// ListSince 取場館自 sinceDate（含）起、來客數高於 minCovers 的實際勞動日資料
func (repository *LaborDayFactRepository) ListSince(contextValue context.Context, venueIdentifier primitive.ObjectID, sinceDate string, minCovers int64) (_ []*model.LaborDayFact, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"venueId":      venueIdentifier,
		"businessDate": bson.M{"$gte": sinceDate},
		"covers":       bson.M{"$gt": minCovers},
	}, options.Find().SetSort(bson.D{{Key: "businessDate", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.LaborDayFact
	for cursor.Next(contextValue) {
		var fact model.LaborDayFact
		if decodeError := cursor.Decode(&fact); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &fact)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

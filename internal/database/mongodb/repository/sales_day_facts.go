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

type SalesDayFactRepository struct {
	collection *mongo.Collection
}

func NewSalesDayFactRepository(mongoClient *client.MongoClient) *SalesDayFactRepository {
	repository := &SalesDayFactRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionSalesDayFacts)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *SalesDayFactRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.SalesDayFactIndexes)
	return nil
}

// ListSince 取場館自 sinceDate（含）起、酒水占比為正的銷售日資料
func (repository *SalesDayFactRepository) ListSince(contextValue context.Context, venueIdentifier primitive.ObjectID, sinceDate string) (_ []*model.SalesDayFact, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"venueId":       venueIdentifier,
		"businessDate":  bson.M{"$gte": sinceDate},
		"beverageShare": bson.M{"$gt": 0},
	}, options.Find().SetSort(bson.D{{Key: "businessDate", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.SalesDayFact
	for cursor.Next(contextValue) {
		var fact model.SalesDayFact
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

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

type DemandForecastRepository struct {
	collection *mongo.Collection
}

func NewDemandForecastRepository(mongoClient *client.MongoClient) *DemandForecastRepository {
	repository := &DemandForecastRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionDemandForecasts)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *DemandForecastRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.DemandForecastIndexes)
	return nil
}

// ListLatestInRange 取區間內每個營業日最新一筆預測，同日多筆以 generatedAt 最新者為準
func (repository *DemandForecastRepository) ListLatestInRange(contextValue context.Context, venueIdentifier primitive.ObjectID, startDate string, endDate string) (_ []*model.DemandForecast, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"venueId": venueIdentifier,
			"businessDate": bson.M{
				"$gte": startDate,
				"$lte": endDate,
			},
			"coversPredicted": bson.M{"$gt": 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "businessDate", Value: 1},
			{Key: "generatedAt", Value: -1},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      "$businessDate",
			"document": bson.M{"$first": "$$ROOT"},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$document"}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "businessDate", Value: 1}}}},
	}

	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []*model.DemandForecast
	for cursor.Next(contextValue) {
		var forecast model.DemandForecast
		if decodeError := cursor.Decode(&forecast); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &forecast)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

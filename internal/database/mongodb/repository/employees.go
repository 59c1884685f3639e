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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftwave)).Collection(string(core.MongoCollectionEmployees)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return nil
}

// ListActive 依 _id 升冪列出場館在職員工，固定排序讓排班的平手裁決可重現
func (repository *EmployeeRepository) ListActive(contextValue context.Context, venueIdentifier primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"venueId":          venueIdentifier,
		"employmentStatus": core.EmploymentStatusActive,
	}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

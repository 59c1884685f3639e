package repository

import (
	"context"

	"shiftwave/config"
	"shiftwave/internal/core"
	client "shiftwave/internal/database/client"
	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleRepository struct {
	mongoClient         *client.MongoClient
	scheduleCollection  *mongo.Collection
	shiftCollection     *mongo.Collection
	insertBatchCapacity int
}

func NewScheduleRepository(configuration *config.Configuration, mongoClient *client.MongoClient) *ScheduleRepository {
	database := mongoClient.Client().Database(string(core.MongoDBShiftwave))
	repository := &ScheduleRepository{
		mongoClient:         mongoClient,
		scheduleCollection:  database.Collection(string(core.MongoCollectionWeeklySchedules)),
		shiftCollection:     database.Collection(string(core.MongoCollectionShiftAssignments)),
		insertBatchCapacity: configuration.Scheduler.Normalized().InsertBatchSize,
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ScheduleRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.scheduleCollection.Indexes().CreateMany(contextValue, model.WeeklyScheduleIndexes)
	_, _ = repository.shiftCollection.Indexes().CreateMany(contextValue, model.ShiftAssignmentIndexes)
	return nil
}

// SetInsertBatchCapacity 覆寫排班寫入的分批大小，僅在正值時生效
func (repository *ScheduleRepository) SetInsertBatchCapacity(batchCapacity int) {
	if batchCapacity > 0 {
		repository.insertBatchCapacity = batchCapacity
	}
}

// shiftBatches 依分批大小切割班次，供交易內多次 InsertMany 使用
func shiftBatches(shifts []*model.ShiftAssignment, batchCapacity int) [][]interface{} {
	if batchCapacity <= 0 {
		batchCapacity = 50
	}
	var batches [][]interface{}
	for batchStart := 0; batchStart < len(shifts); batchStart += batchCapacity {
		batchEnd := batchStart + batchCapacity
		if batchEnd > len(shifts) {
			batchEnd = len(shifts)
		}
		documents := make([]interface{}, 0, batchEnd-batchStart)
		for _, shift := range shifts[batchStart:batchEnd] {
			documents = append(documents, shift)
		}
		batches = append(batches, documents)
	}
	return batches
}

// ReplaceWeek 以單一交易覆蓋指定週排班：先刪舊表頭與班次，再寫入新資料。
// 交易中途失敗時整週回滾，不會留下半套排班。
func (repository *ScheduleRepository) ReplaceWeek(contextValue context.Context, schedule *model.WeeklySchedule, shifts []*model.ShiftAssignment) (returnedError error) {
	session, sessionError := repository.mongoClient.Client().StartSession()
	if sessionError != nil {
		return sessionError
	}
	defer session.EndSession(contextValue)

	_, returnedError = session.WithTransaction(contextValue, func(sessionContext mongo.SessionContext) (interface{}, error) {
		weekFilter := bson.M{
			"venueId":       schedule.VenueID,
			"weekStartDate": schedule.WeekStartDate,
		}

		var previousSchedules []bson.M
		cursor, findError := repository.scheduleCollection.Find(sessionContext, weekFilter, options.Find().SetProjection(bson.M{"_id": 1}))
		if findError != nil {
			return nil, findError
		}
		if cursorError := cursor.All(sessionContext, &previousSchedules); cursorError != nil {
			return nil, cursorError
		}

		previousIdentifiers := make([]primitive.ObjectID, 0, len(previousSchedules))
		for _, previous := range previousSchedules {
			if identifier, ok := previous["_id"].(primitive.ObjectID); ok {
				previousIdentifiers = append(previousIdentifiers, identifier)
			}
		}
		if len(previousIdentifiers) > 0 {
			if _, deleteError := repository.shiftCollection.DeleteMany(sessionContext, bson.M{"scheduleId": bson.M{"$in": previousIdentifiers}}); deleteError != nil {
				return nil, deleteError
			}
			if _, deleteError := repository.scheduleCollection.DeleteMany(sessionContext, weekFilter); deleteError != nil {
				return nil, deleteError
			}
		}

		if _, insertError := repository.scheduleCollection.InsertOne(sessionContext, schedule); insertError != nil {
			return nil, insertError
		}

		for _, documents := range shiftBatches(shifts, repository.insertBatchCapacity) {
			if _, insertError := repository.shiftCollection.InsertMany(sessionContext, documents); insertError != nil {
				return nil, insertError
			}
		}

		return nil, nil
	})

	return returnedError
}

func (repository *ScheduleRepository) GetWeek(contextValue context.Context, venueIdentifier primitive.ObjectID, weekStartDate string) (_ *model.WeeklySchedule, returnedError error) {
	var schedule model.WeeklySchedule
	if returnedError = repository.scheduleCollection.FindOne(contextValue, bson.M{
		"venueId":       venueIdentifier,
		"weekStartDate": weekStartDate,
	}).Decode(&schedule); returnedError != nil {
		return nil, returnedError
	}
	return &schedule, nil
}

// ListShifts 依營業日與班次起始時間排序列出一份排班表的全部班次
func (repository *ScheduleRepository) ListShifts(contextValue context.Context, scheduleIdentifier primitive.ObjectID) (_ []*model.ShiftAssignment, returnedError error) {
	cursor, findError := repository.shiftCollection.Find(contextValue, bson.M{
		"scheduleId": scheduleIdentifier,
	}, options.Find().SetSort(bson.D{
		{Key: "businessDate", Value: 1},
		{Key: "scheduledStart", Value: 1},
		{Key: "positionName", Value: 1},
	}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.ShiftAssignment
	for cursor.Next(contextValue) {
		var shift model.ShiftAssignment
		if decodeError := cursor.Decode(&shift); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &shift)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

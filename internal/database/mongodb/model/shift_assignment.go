package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShiftAssignment 單一員工在單一營業日的一個波次班。
// 跨午夜的波次 ScheduledEnd 落在 BusinessDate 的次日。
type ShiftAssignment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	ScheduleID     primitive.ObjectID `json:"scheduleId" bson:"scheduleId"`
	VenueID        primitive.ObjectID `json:"venueId" bson:"venueId"`
	EmployeeID     primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	PositionID     primitive.ObjectID `json:"positionId" bson:"positionId"`
	PositionName   string             `json:"positionName" bson:"positionName"`
	BusinessDate   string             `json:"businessDate" bson:"businessDate"`
	ShiftType      string             `json:"shiftType" bson:"shiftType"`
	WaveLabel      string             `json:"waveLabel" bson:"waveLabel"`
	ScheduledStart time.Time          `json:"scheduledStart" bson:"scheduledStart"`
	ScheduledEnd   time.Time          `json:"scheduledEnd" bson:"scheduledEnd"`
	ScheduledHours float64            `json:"scheduledHours" bson:"scheduledHours"`
	HourlyRate     float64            `json:"hourlyRate" bson:"hourlyRate"`
	ScheduledCost  float64            `json:"scheduledCost" bson:"scheduledCost"`
	Status         string             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

var ShiftAssignmentIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "scheduleId", Value: 1}},
		Options: options.Index().SetName("idx_scheduleId"),
	},
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "businessDate", Value: 1}},
		Options: options.Index().SetName("idx_venueId_businessDate"),
	},
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "businessDate", Value: 1}},
		Options: options.Index().SetName("idx_employeeId_businessDate"),
	},
}

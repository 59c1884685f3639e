package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WeeklySchedule 一個 (venue, weekStartDate) 最多存在一份；重新產生會整份取代。
type WeeklySchedule struct {
	ID                        primitive.ObjectID `json:"id" bson:"_id"`
	VenueID                   primitive.ObjectID `json:"venueId" bson:"venueId"`
	WeekStartDate             string             `json:"weekStartDate" bson:"weekStartDate"`
	WeekEndDate               string             `json:"weekEndDate" bson:"weekEndDate"`
	Status                    string             `json:"status" bson:"status"`
	TotalLaborHours           float64            `json:"totalLaborHours" bson:"totalLaborHours"`
	TotalLaborCost            float64            `json:"totalLaborCost" bson:"totalLaborCost"`
	OverallCoversPerLaborHour float64            `json:"overallCoversPerLaborHour" bson:"overallCoversPerLaborHour"`
	ProjectedRevenue          float64            `json:"projectedRevenue" bson:"projectedRevenue"`
	CalibrationMode           string             `json:"calibrationMode,omitempty" bson:"calibrationMode,omitempty"`
	UnderstaffedSlots         int                `json:"understaffedSlots" bson:"understaffedSlots"`
	AutoGenerated             bool               `json:"autoGenerated" bson:"autoGenerated"`
	GeneratedAt               time.Time          `json:"generatedAt" bson:"generatedAt"`
	CreatedAt                 time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt                 time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var WeeklyScheduleIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "weekStartDate", Value: 1}},
		Options: options.Index().SetName("uniq_venueId_weekStartDate").SetUnique(true),
	},
}

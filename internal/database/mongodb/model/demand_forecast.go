package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DemandForecast 由外部預測服務寫入；同一 businessDate 可能存在多個預測批次，
// 排班只採用 generatedAt 最新的一筆。
type DemandForecast struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	VenueID          primitive.ObjectID `json:"venueId" bson:"venueId"`
	BusinessDate     string             `json:"businessDate" bson:"businessDate"`
	CoversPredicted  float64            `json:"coversPredicted" bson:"coversPredicted"`
	RevenuePredicted float64            `json:"revenuePredicted" bson:"revenuePredicted"`
	GeneratedAt      time.Time          `json:"generatedAt" bson:"generatedAt"`
}

var DemandForecastIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "businessDate", Value: 1}, {Key: "generatedAt", Value: -1}},
		Options: options.Index().SetName("idx_venueId_businessDate_generatedAt"),
	},
}

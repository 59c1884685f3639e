package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Position struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	VenueID    primitive.ObjectID `json:"venueId" bson:"venueId"`
	Name       string             `json:"name" bson:"name"`
	Category   string             `json:"category" bson:"category"`
	HourlyRate float64            `json:"hourlyRate" bson:"hourlyRate"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var PositionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("uniq_venueId_name").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_venueId_status"),
	},
}

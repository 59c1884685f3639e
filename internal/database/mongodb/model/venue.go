package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Venue struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Class        string             `json:"class,omitempty" bson:"class,omitempty"`
	Status       string             `json:"status" bson:"status"`
	AutoSchedule bool               `json:"autoSchedule" bson:"autoSchedule"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var VenueIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "autoSchedule", Value: 1}},
		Options: options.Index().SetName("idx_status_autoSchedule"),
	},
}
